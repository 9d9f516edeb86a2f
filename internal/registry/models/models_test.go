package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientChanges_IsEmpty(t *testing.T) {
	assert.True(t, ClientChanges{}.IsEmpty())
	assert.False(t, ClientChanges{LastName: Ptr("Sokolova")}.IsEmpty())
	assert.False(t, ClientChanges{Email: Ptr("")}.IsEmpty(), "explicit empty value is still a change")
}

func TestClientFilter_IsEmpty(t *testing.T) {
	assert.True(t, ClientFilter{}.IsEmpty())
	assert.False(t, ClientFilter{Telephone: Ptr("89167778823")}.IsEmpty())
}

func TestPtr(t *testing.T) {
	p := Ptr("Natalia")
	assert.Equal(t, "Natalia", *p)
	*p = "Olga"
	assert.Equal(t, "Olga", *p)
}
