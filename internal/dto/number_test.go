package dto

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected Price
		WantErr  bool
	}{
		{Name: "number", Input: `19.99`, Expected: 19.99},
		{Name: "numeric text", Input: `"19.99"`, Expected: 19.99},
		{Name: "padded text", Input: `" 7 "`, Expected: 7},
		{Name: "integer", Input: `25`, Expected: 25},
		{Name: "empty text", Input: `""`, WantErr: true},
		{Name: "words", Input: `"cheap"`, WantErr: true},
		{Name: "not a number literal", Input: `"NaN"`, WantErr: true},
		{Name: "boolean", Input: `true`, WantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var p Price
			err := json.Unmarshal([]byte(tc.Input), &p)
			if tc.WantErr {
				var numErr *NumberError
				require.True(t, errors.As(err, &numErr))
				assert.Equal(t, "price", numErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Expected, p)
		})
	}
}

func TestQuantity_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected Quantity
		WantErr  bool
	}{
		{Name: "number", Input: `12`, Expected: 12},
		{Name: "numeric text", Input: `"12"`, Expected: 12},
		{Name: "whole float", Input: `3.0`, Expected: 3},
		{Name: "fraction", Input: `2.5`, WantErr: true},
		{Name: "words", Input: `"many"`, WantErr: true},
		{Name: "negative", Input: `-3`, Expected: -3},
		{Name: "above int64", Input: `1e30`, WantErr: true},
		{Name: "below int64", Input: `"-1e19"`, WantErr: true},
		{Name: "just above int64", Input: `9223372036854775808`, WantErr: true},
		{Name: "int64 max", Input: `9223372036854775807`, Expected: math.MaxInt64},
		{Name: "int64 min as float", Input: `-9.223372036854775808e18`, Expected: math.MinInt64},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var q Quantity
			err := json.Unmarshal([]byte(tc.Input), &q)
			if tc.WantErr {
				var numErr *NumberError
				require.True(t, errors.As(err, &numErr))
				assert.Equal(t, "quantity", numErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Expected, q)
		})
	}
}

func TestToyRequest_NullPriceStaysUnset(t *testing.T) {
	var req ToyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Racer","price":null}`), &req))
	assert.Nil(t, req.Price)
	assert.Nil(t, req.Quantity)
}
