// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhibNayem/IntelliTest/pkg/types"
)

func TestIsBusinessLogic(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"calculate_total", true},
		{"processOrder", true},
		{"HandleRequest", true},
		{"validate", true},
		{"manageInventory", true},
		{"test_helper", false},
		{"test_calculate_total", false},
		{"calculate_test", false},
		{"setUpDatabase", false},
		{"tearDown", false},
		{"mock_create_user", false},
		{"create_stub", false},
		{"stringUtils_create", false},
		{"formatHelper", false},
		{"__init__", false},
		{"__call__", false},
		{"foo_bar", false},
		{"render", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBusinessLogic(tt.name))
		})
	}
}

func TestEntries(t *testing.T) {
	pf := &types.ParsedFile{
		Path: "orders.py",
		Classes: []types.ClassRecord{
			{Name: "OrderService", Methods: []types.FunctionRecord{
				{Name: "__init__"},
				{Name: "create_order", Line: 5},
				{Name: "render"},
			}},
			{Name: "Plain", Methods: []types.FunctionRecord{{Name: "to_dict"}}},
		},
		Functions: []types.FunctionRecord{
			{Name: "validate_payment", Line: 20},
			{Name: "test_helper"},
		},
	}

	entries := Entries(pf)
	require.Len(t, entries, 2)

	assert.Equal(t, types.EntryClass, entries[0].Kind)
	assert.Equal(t, "OrderService", entries[0].Name)
	require.Len(t, entries[0].Methods, 1)
	assert.Equal(t, "create_order", entries[0].Methods[0].Name)
	assert.Equal(t, 5, entries[0].Methods[0].Line)

	assert.Equal(t, types.EntryFunctions, entries[1].Kind)
	require.Len(t, entries[1].Functions, 1)
	assert.Equal(t, "validate_payment", entries[1].Functions[0].Name)
}

func TestEntries_NoneQualify(t *testing.T) {
	pf := &types.ParsedFile{
		Classes:   []types.ClassRecord{{Name: "Empty", Methods: []types.FunctionRecord{}}},
		Functions: []types.FunctionRecord{{Name: "main"}},
	}
	assert.Nil(t, Entries(pf))
}

func TestEntries_SeveralClassesKeepAll(t *testing.T) {
	pf := &types.ParsedFile{
		Classes: []types.ClassRecord{
			{Name: "A", Methods: []types.FunctionRecord{{Name: "process"}}},
			{Name: "B", Methods: []types.FunctionRecord{{Name: "execute"}}},
		},
	}
	entries := Entries(pf)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, "B", entries[1].Name)
}
