package validate

import (
	"testing"

	"github.com/google/uuid"
)

type signup struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Score *int   `json:"score" validate:"required,gte=0,lte=100"`
}

func TestCheck(t *testing.T) {
	ok, tooHigh := 40, 120

	tests := []struct {
		name string
		val  signup
		want string
	}{
		{"valid", signup{Name: "Ada", Email: "ada@example.com", Score: &ok}, ""},
		{"missing name", signup{Email: "ada@example.com", Score: &ok}, "name is a required field"},
		{"bad email", signup{Name: "Ada", Email: "ada", Score: &ok}, "email must be a valid email address"},
		{"missing score", signup{Name: "Ada", Email: "ada@example.com"}, "score is a required field"},
		{"score too high", signup{Name: "Ada", Email: "ada@example.com", Score: &tooHigh}, "score must be 100 or less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.val)
			if tt.want == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.want {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", id, err)
	}
	if GenerateID() == id {
		t.Fatal("expected distinct ids")
	}
}
