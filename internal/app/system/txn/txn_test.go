package txn

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"standalone code", mongo.CommandError{Code: 20, Message: "x"}, true},
		{"illegal operation code", mongo.CommandError{Code: 51, Message: "x"}, true},
		{"other code", mongo.CommandError{Code: 11000, Message: "duplicate key"}, false},
		{"message", errors.New("Transaction numbers are only allowed on a replica set member"), true},
		{"single keyword", errors.New("session expired"), false},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
