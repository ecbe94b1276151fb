package helper

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func TestValidationErrorFieldMap(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	verr := validator.New().Struct(payload{})
	if verr == nil {
		t.Fatalf("seed: expected validation error")
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, verr)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Success {
		t.Errorf("success harus false")
	}
	if body.ErrorCode != "VALIDATION_ERROR" {
		t.Errorf("error_code = %s", body.ErrorCode)
	}
	if len(body.Errors["Name"]) == 0 || body.Errors["Name"][0] != "required" {
		t.Errorf("field errors = %v, want Name→required", body.Errors)
	}
}

func TestValidationErrorNonValidatorFallback(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, errors.New("bukan validator error"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
