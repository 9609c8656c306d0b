package namemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_MappedName(t *testing.T) {
	m := New(map[string]string{
		"JEYI": "金帝利",
		"미유":   "山﨑水優",
	})

	assert.Equal(t, "金帝利", m.Resolve("JEYI"))
	assert.Equal(t, "山﨑水優", m.Resolve("미유"))
}

func TestResolve_UnmappedNameFallsThrough(t *testing.T) {
	m := New(map[string]string{"JEYI": "金帝利"})

	assert.Equal(t, "山下南", m.Resolve("山下南"))
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	m := New(map[string]string{"JEYI": "金帝利"})

	assert.Equal(t, "金帝利", m.Resolve("  JEYI "))
	assert.Equal(t, "山下南", m.Resolve(" 山下南　"))
}

func TestResolve_FullWidthRomajiMatchesASCIIAlias(t *testing.T) {
	m := New(map[string]string{"JEYI": "金帝利"})

	// The platform sometimes stores romanized names in full-width forms.
	assert.Equal(t, "金帝利", m.Resolve("ＪＥＹＩ"))
}

func TestResolve_EmptyName(t *testing.T) {
	m := New(nil)

	assert.Equal(t, "", m.Resolve(""))
	assert.Equal(t, "", m.Resolve("   "))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 0, New(nil).Len())
	assert.Equal(t, 2, New(map[string]string{"A": "a", "B": "b"}).Len())
}
