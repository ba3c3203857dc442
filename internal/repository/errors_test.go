package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")
	dupWrite := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "gorm not found", in: gorm.ErrRecordNotFound, want: ErrNotFound},
		{name: "wrapped gorm not found", in: fmt.Errorf("query: %w", gorm.ErrRecordNotFound), want: ErrNotFound},
		{name: "mongo no documents", in: mongo.ErrNoDocuments, want: ErrNotFound},
		{name: "gorm duplicate", in: gorm.ErrDuplicatedKey, want: ErrDuplicate},
		{name: "mongo duplicate", in: dupWrite, want: ErrDuplicate},
		{name: "passthrough", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate(tt.in))
		})
	}
}
