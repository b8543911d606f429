package scanner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attributeAccuracyTestcase struct {
	inHTML string          // snippet of HTML to scan (first element must be an opening tag)
	attrs  map[string]Attr // expected attributes of the first element
}

var attributeAccuracyTests = []attributeAccuracyTestcase{
	{`<head></head>`, map[string]Attr{}},
	{`<script src='123' onload='test'></script>`, map[string]Attr{
		"src":    {Val: "123"},
		"onload": {Val: "test"},
	}},
	{`<a href="http://x?F" id=foo class=link >`, map[string]Attr{
		"href":  {Val: "http://x?F"},
		"id":    {Val: "foo"},
		"class": {Val: "link"},
	}},
	// later duplicates overwrite earlier ones
	{`<script src='123' src='456'></script>`, map[string]Attr{
		"src": {Val: "456"},
	}},
	{`<script src=123 onload=test></script>`, map[string]Attr{
		"src":    {Val: "123"},
		"onload": {Val: "test"},
	}},
	{`<script src></script>`, map[string]Attr{
		"src": {Bare: true},
	}},
	{`<script src test></script>`, map[string]Attr{
		"src":  {Bare: true},
		"test": {Bare: true},
	}},
	{`<script <asd></script>`, map[string]Attr{
		"<asd": {Bare: true},
	}},
	{`<script ABC=123></script>`, map[string]Attr{
		"abc": {Val: "123"},
	}},
	{`<script abc=></script>`, map[string]Attr{
		"abc": {Val: ""},
	}},
	{"<script\tabc=123></script>", map[string]Attr{
		"abc": {Val: "123"},
	}},
	{`<p данные=да x="y">`, map[string]Attr{
		"данные": {Val: "да"},
		"x":      {Val: "y"},
	}},
	{`<input value=''>`, map[string]Attr{
		"value": {Val: ""},
	}},
	{`<a href = "x" rel= next>`, map[string]Attr{
		"href": {Val: "x"},
		"rel":  {Val: "next"},
	}},
}

func TestAttributeAccuracy(t *testing.T) {
	for _, tt := range attributeAccuracyTests {
		tt := tt
		t.Run(tt.inHTML, func(t *testing.T) {
			t.Parallel()
			s := NewString(tt.inHTML)
			require.True(t, s.Valid())
			el := s.Current()
			require.Equal(t, OpeningTagElement, el.Type)
			if diff := cmp.Diff(tt.attrs, el.Attrs); diff != "" {
				t.Errorf("attribute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnterminatedQuoteLeavesBareAttribute(t *testing.T) {
	in := `<img alt="oops>`
	s := NewString(in)
	el := s.Current()
	require.NotNil(t, el)
	assert.Equal(t, OpeningTagElement, el.Type)
	assert.Equal(t, "img", el.Name)
	assert.Equal(t, map[string]Attr{"alt": {Bare: true}}, el.Attrs)
	// the tag ends unterminated at the opening quote
	assert.Equal(t, strings.IndexByte(in, '"'), el.End)
	assert.False(t, s.Next())
}

// An unterminated opening tag followed by more markup absorbs that markup
// as bogus attribute tokens. Downstream callers depend on the offsets this
// produces, so the behavior is pinned here.
func TestUnterminatedTagAbsorbsFollowingMarkup(t *testing.T) {
	in := `<p class=a <i>x</i>`
	s := NewString(in)
	el := s.Current()
	require.NotNil(t, el)
	assert.Equal(t, OpeningTagElement, el.Type)
	assert.Equal(t, "p", el.Name)
	if diff := cmp.Diff(map[string]Attr{
		"class": {Val: "a"},
		"<i":    {Bare: true},
	}, el.Attrs); diff != "" {
		t.Errorf("attribute mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, strings.IndexByte(in, '>')+1, el.End)

	require.True(t, s.Next())
	el = s.Current()
	assert.Equal(t, ClosingTagElement, el.Type)
	assert.Equal(t, "i", el.Name)
	assert.Equal(t, len(in), el.End)
}

func TestClosingTagAttributesDiscarded(t *testing.T) {
	s := NewString(`</p class="x">`)
	el := s.Current()
	require.NotNil(t, el)
	assert.Equal(t, ClosingTagElement, el.Type)
	assert.Equal(t, "p", el.Name)
	assert.Nil(t, el.Attrs)
	assert.Equal(t, 14, el.End)
}
