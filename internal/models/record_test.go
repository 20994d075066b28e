// internal/models/record_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEditTypeChecks(t *testing.T) {
	r := NewRecord()

	require.NoError(t, r.ApplyEdit(FieldFirstName, "Maria"))
	assert.Equal(t, "Maria", r.FirstName)

	require.NoError(t, r.ApplyEdit(FieldConsentAge, true))
	assert.True(t, r.ConsentAge)

	assert.Error(t, r.ApplyEdit(FieldFirstName, 42), "text field rejects non-string")
	assert.Error(t, r.ApplyEdit(FieldConsentAge, "yes"), "consent field rejects non-bool")
	assert.Error(t, r.ApplyEdit(FieldFullName, "x"), "derived field is read-only")
	assert.Error(t, r.ApplyEdit(FieldAge, 30), "derived field is read-only")
	assert.Error(t, r.ApplyEdit(FieldHeadShot1, "x"), "photo slots go through SetPhoto")
	assert.Error(t, r.ApplyEdit(Field("noSuchField"), "x"))
}

func TestSetPhotoAndClear(t *testing.T) {
	r := NewRecord()

	slot := &PhotoSlot{Name: "head.jpg", Size: 1024}
	require.NoError(t, r.SetPhoto(FieldHeadShot1, slot))
	assert.Equal(t, slot, r.Photo(FieldHeadShot1))

	require.NoError(t, r.SetPhoto(FieldHeadShot1, nil))
	assert.Nil(t, r.Photo(FieldHeadShot1))

	assert.Error(t, r.SetPhoto(FieldFirstName, slot))
	assert.Nil(t, r.Photo(FieldFirstName))
}

func TestCloneIsIndependent(t *testing.T) {
	r := NewRecord()
	r.FirstName = "Maria"
	age := 25
	r.Age = &age

	clone := r.Clone()
	clone.FirstName = "Other"
	*clone.Age = 30

	assert.Equal(t, "Maria", r.FirstName)
	assert.Equal(t, 25, *r.Age)
}

func TestErrorIndexKeepsFirstErrorPerField(t *testing.T) {
	errs := []FieldError{
		{Field: FieldEmail, Code: CodeMissingRequired, Section: SectionContact},
		{Field: FieldEmail, Code: CodeInvalidFormat, Section: SectionContact},
		{Field: FieldBio, Code: CodeWordLimit, Section: SectionProfile},
	}

	idx := ErrorIndex(errs)
	require.Len(t, idx, 2)
	assert.Equal(t, CodeMissingRequired, idx[FieldEmail].Code)
	assert.Equal(t, CodeWordLimit, idx[FieldBio].Code)
}
