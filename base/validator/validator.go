package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ipfs/go-cid"
	"github.com/labstack/echo/v4"
)

// TagCid validates a collection root: the first path segment must decode as a cid
const TagCid = "cid"

// IsValidCid accepts a bare cid or a cid followed by a sub path, e.g. Qm.../metadata
func IsValidCid(root string) bool {
	root = strings.Trim(root, "/")
	if root == "" {
		return false
	}
	first := strings.SplitN(root, "/", 2)[0]
	_, err := cid.Decode(first)
	return err == nil
}

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	// only fails on an empty tag name
	_ = v.RegisterValidation(TagCid, func(fl validator.FieldLevel) bool {
		return IsValidCid(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
