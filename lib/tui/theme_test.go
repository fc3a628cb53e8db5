// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "testing"

func TestTheme_Toggled(t *testing.T) {
	if LightTheme.Toggled().Name != DarkTheme.Name {
		t.Error("light should toggle to dark")
	}
	if DarkTheme.Toggled().Name != LightTheme.Name {
		t.Error("dark should toggle to light")
	}
}

func TestTheme_PalettesDiffer(t *testing.T) {
	if LightTheme.Dark {
		t.Error("LightTheme marked dark")
	}
	if !DarkTheme.Dark {
		t.Error("DarkTheme not marked dark")
	}
	if LightTheme.ButtonBackground == DarkTheme.ButtonBackground {
		t.Error("light and dark themes share a button background")
	}
	if LightTheme.Toggled().Toggled().Name != LightTheme.Name {
		t.Error("toggling twice should return to the light theme")
	}
}
