package payload

import (
	"txwatch/internal/auth"

	"github.com/jellydator/validation"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordLength = 72

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&a.Password, validation.Required, validation.Length(1, maxPasswordLength)),
	)
}

func (a AuthRequest) ToMessage() auth.AuthMessage {
	return auth.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
