package nftmeta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationResult_SerializesEmptyArrays(t *testing.T) {
	data, err := json.Marshal(NewValidationResult())
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":[],"warnings":[]}`, string(data))
}

func TestValidationResult_AddAndMerge(t *testing.T) {
	r := NewValidationResult()
	assert.True(t, r.Valid())
	assert.False(t, r.HasWarnings())

	r.AddWarning("schema", "instance", "is not allowed to have the additional property 'foo'")
	assert.True(t, r.Valid(), "warnings alone keep a result valid")
	assert.True(t, r.HasWarnings())

	other := NewValidationResult()
	other.AddError("SHA256", "instance.checksum", "is not a valid SHA256 hash")
	r.Merge(other)

	assert.False(t, r.Valid())
	require.Len(t, r.Errors, 1)
	assert.Equal(t, Issue{Type: "SHA256", Msg: "is not a valid SHA256 hash", Path: "instance.checksum"}, r.Errors[0])
	assert.Len(t, r.Warnings, 1)
}

func TestFileResult_OK(t *testing.T) {
	assert.True(t, FileResult{Filename: "a.json"}.OK())
	assert.False(t, FileResult{Filename: "a.json", Err: assert.AnError}.OK())
}
