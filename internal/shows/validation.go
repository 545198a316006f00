package shows

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterGenreValidation installs the "genre" binding tag used by the
// create/update request DTOs. Call once during router setup.
func RegisterGenreValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			return IsValidGenre(fl.Field().String())
		})
	}
}
