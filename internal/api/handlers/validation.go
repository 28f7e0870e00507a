package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
)

// RegisterValidators adds the agentmode tag to gin's validator engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("agentmode", validateAgentMode)
}

func validateAgentMode(fl validator.FieldLevel) bool {
	_, ok := models.ParseMode(fl.Field().String())
	return ok
}
