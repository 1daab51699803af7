package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "scheduled", raw: "scheduled", want: "Programado"},
		{name: "active", raw: "active", want: "En vuelo"},
		{name: "en-route", raw: "en-route", want: "En vuelo"},
		{name: "landed", raw: "landed", want: "Aterrizó"},
		{name: "cancelled", raw: "cancelled", want: "Cancelado"},
		{name: "delayed", raw: "delayed", want: "Demorado"},
		{name: "case insensitive", raw: "SCHEDULED", want: "Programado"},
		{name: "unmapped passes through", raw: "taxiing", want: "taxiing"},
		{name: "empty", raw: "", want: StatusUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.raw))
		})
	}
}
