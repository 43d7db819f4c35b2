// Package common - Test mapping lỗi mongo về taxonomy của ứng dụng.
package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))

	assert.ErrorIs(t, ConvertMongoError(mongo.ErrNoDocuments), ErrNotFound)

	err := ConvertMongoError(errors.New("socket closed"))
	var customErr *Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
	assert.Equal(t, "socket closed", customErr.Message)
}

func TestErrorIs_MatchesByCodeAndMessage(t *testing.T) {
	err := NewError(ErrCodeConfiguration, MsgStoreNotReady, StatusInternalServerError, "details vary")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.False(t, errors.Is(err, ErrNotFound))
}
