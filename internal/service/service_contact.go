package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/foodblog/go-food-blog/internal/adapter"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/models"
)

type contactService struct {
	adapter  adapter.ServerAdapter
	validate *validator.Validate
	logger   *logger.Logger
}

func NewContactService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ContactService {
	return &contactService{
		adapter:  serverAdapter,
		validate: validator.New(),
		logger:   logger,
	}
}

// Send implements [ContactService].
func (c *contactService) Send(ctx context.Context, msg models.ContactMessage) error {
	if err := c.validate.Struct(msg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate contact message: %w", err)
		}

		fields := map[string]string{}
		for _, fe := range verrs {
			fields[contactField(fe)] = contactMessageText(fe)
		}
		return &ValidationError{Fields: fields}
	}

	return c.adapter.Contact(ctx, msg)
}

func contactField(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name"
	case "Email":
		return "email"
	default:
		return "message"
	}
}

func contactMessageText(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "Name is required"
	case "Email":
		if fe.Tag() == "email" {
			return "Enter a valid email address"
		}
		return "Email is required"
	default:
		return "Message is required"
	}
}
