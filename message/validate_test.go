/*
 * MIT License
 *
 * Copyright (c) 2026 Statekit Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/statekit/statekit/errors"
)

type kindedCommand struct {
	kind string
}

func (c kindedCommand) Kind() string { return c.kind }

func TestValidate(t *testing.T) {
	t.Run("With Message value", func(t *testing.T) {
		msg, err := Validate(New("INCREMENT", 2))
		require.NoError(t, err)
		assert.Equal(t, "INCREMENT", msg.Kind)
		assert.Equal(t, 2, msg.Payload)
	})
	t.Run("With Message missing kind", func(t *testing.T) {
		_, err := Validate(Message{Payload: 2})
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With map carrying discriminator", func(t *testing.T) {
		raw := map[string]any{"type": "SET_NAME", "name": "ada"}
		msg, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, "SET_NAME", msg.Kind)
		assert.Equal(t, raw, msg.Payload)
	})
	t.Run("With map missing discriminator", func(t *testing.T) {
		_, err := Validate(map[string]any{"name": "ada"})
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With map carrying empty discriminator", func(t *testing.T) {
		_, err := Validate(map[string]any{"type": ""})
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With map carrying non-string discriminator", func(t *testing.T) {
		_, err := Validate(map[string]any{"type": 12})
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With Kinder implementation", func(t *testing.T) {
		msg, err := Validate(kindedCommand{kind: "RESET"})
		require.NoError(t, err)
		assert.Equal(t, "RESET", msg.Kind)
	})
	t.Run("With Kinder returning empty kind", func(t *testing.T) {
		_, err := Validate(kindedCommand{})
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With arbitrary value", func(t *testing.T) {
		_, err := Validate(42)
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
}

func TestValidateJSON(t *testing.T) {
	t.Run("With valid document", func(t *testing.T) {
		data := []byte(`{"type":"SET_NAME","name":"ada"}`)
		msg, err := ValidateJSON(data)
		require.NoError(t, err)
		assert.Equal(t, "SET_NAME", msg.Kind)
		assert.Equal(t, data, msg.Payload)
	})
	t.Run("With malformed json", func(t *testing.T) {
		_, err := ValidateJSON([]byte(`{"type":`))
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With missing discriminator", func(t *testing.T) {
		_, err := ValidateJSON([]byte(`{"name":"ada"}`))
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With empty discriminator", func(t *testing.T) {
		_, err := ValidateJSON([]byte(`{"type":""}`))
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
	t.Run("With numeric discriminator", func(t *testing.T) {
		_, err := ValidateJSON([]byte(`{"type":7}`))
		assert.ErrorIs(t, err, gerrors.ErrInvalidMessage)
	})
}
