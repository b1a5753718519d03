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
	"fmt"

	"github.com/tidwall/gjson"

	gerrors "github.com/statekit/statekit/errors"
)

// discriminatorField is the key the validator inspects on untyped values.
const discriminatorField = "type"

// Validate inspects an arbitrary value and returns the Message it carries,
// or errors.ErrInvalidMessage. Accepted shapes:
//   - a Message with a non-empty Kind
//   - a map[string]any with a non-empty string under "type" (the full map
//     becomes the payload)
//   - any value exposing Kind() string returning a non-empty kind
//
// Callers run this before Send; the engine itself performs no validation.
func Validate(v any) (Message, error) {
	switch m := v.(type) {
	case Message:
		if m.Kind == "" {
			return Message{}, fmt.Errorf("%w: empty kind", gerrors.ErrInvalidMessage)
		}
		return m, nil
	case map[string]any:
		kind, ok := m[discriminatorField].(string)
		if !ok || kind == "" {
			return Message{}, fmt.Errorf("%w: missing %q field", gerrors.ErrInvalidMessage, discriminatorField)
		}
		return Message{Kind: kind, Payload: m}, nil
	}

	if kinder, ok := v.(interface{ Kind() string }); ok {
		if kind := kinder.Kind(); kind != "" {
			return Message{Kind: kind, Payload: v}, nil
		}
		return Message{}, fmt.Errorf("%w: empty kind", gerrors.ErrInvalidMessage)
	}
	return Message{}, fmt.Errorf("%w: %T carries no discriminator", gerrors.ErrInvalidMessage, v)
}

// ValidateJSON applies the Validate contract to raw JSON without decoding
// the whole document. On success the returned Message keeps data as its
// payload.
func ValidateJSON(data []byte) (Message, error) {
	if !gjson.ValidBytes(data) {
		return Message{}, fmt.Errorf("%w: malformed json", gerrors.ErrInvalidMessage)
	}
	kind := gjson.GetBytes(data, discriminatorField)
	if kind.Type != gjson.String || kind.Str == "" {
		return Message{}, fmt.Errorf("%w: missing %q field", gerrors.ErrInvalidMessage, discriminatorField)
	}
	return Message{Kind: kind.Str, Payload: data}, nil
}
