package selection

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/pichalabs/picha/core"
)

func TestEntry_Validate(t *testing.T) {
	validate := validator.New()

	entry := Entry{ID: "61a000000000000000000001", Email: "Kid@X.com "}
	if err := entry.Validate(validate); err != nil {
		t.Fatalf("Validate(): %v", err)
	}
	if entry.Email != "kid@x.com" {
		t.Errorf("email not cleaned: %q", entry.Email)
	}

	bad := Entry{ID: "not-a-class-id", Email: "kid@x.com"}
	err := bad.Validate(validate)
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("err = %T (%v); want *core.ValidationError", err, err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "_id" {
		t.Errorf("fields = %+v; want one _id error", vErr.Fields)
	}
}
