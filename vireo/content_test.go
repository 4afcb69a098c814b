package vireo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireo-ai/vireo-go/core"
)

func TestContentBlockRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		block ContentBlock
	}{
		{"text", NewTextContent("hello world")},
		{"text empty", NewTextContent("")},
		{"image file auto detail", NewImageFileContent("file-abc", ImageDetailAuto)},
		{"image file high detail", NewImageFileContent("file-abc", ImageDetailHigh)},
		{"image url low detail", NewImageURLContent("https://example.com/cat.png", ImageDetailLow)},
		{"image url default detail", NewImageURLContent("https://example.com/cat.png", "")},
		{"refusal", NewRefusalContent("I can't help with that.")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.block)
			require.NoError(t, err)

			var decoded ContentBlock
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.block, decoded)
		})
	}
}

func TestContentBlockDecodeTextFixture(t *testing.T) {
	data := []byte(`{"type":"text","text":{"value":"hi","annotations":[]}}`)

	var block ContentBlock
	require.NoError(t, json.Unmarshal(data, &block))

	assert.Equal(t, ContentTypeText, block.Type)
	require.NotNil(t, block.Text)
	assert.Equal(t, "hi", block.Text.Value)
	assert.Empty(t, block.Text.Annotations)
}

func TestContentBlockDecodeAnnotations(t *testing.T) {
	data := []byte(`{
		"type": "text",
		"text": {
			"value": "see the report",
			"annotations": [
				{
					"type": "file_citation",
					"text": "【source】",
					"start_index": 8,
					"end_index": 14,
					"file_citation": {"file_id": "file-xyz"}
				}
			]
		}
	}`)

	var block ContentBlock
	require.NoError(t, json.Unmarshal(data, &block))

	require.Len(t, block.Text.Annotations, 1)
	ann := block.Text.Annotations[0]
	assert.Equal(t, AnnotationTypeFileCitation, ann.Type)
	assert.Equal(t, 8, ann.StartIndex)
	require.NotNil(t, ann.FileCitation)
	assert.Equal(t, "file-xyz", ann.FileCitation.FileID)
}

func TestContentBlockDecodeUnknownType(t *testing.T) {
	data := []byte(`{"type":"bogus","bogus":{"value":"?"}}`)

	var block ContentBlock
	err := json.Unmarshal(data, &block)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownContentType)
	assert.Contains(t, err.Error(), "bogus")
}

func TestContentBlockDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"text missing object", `{"type":"text"}`},
		{"image file missing file_id", `{"type":"image_file","image_file":{}}`},
		{"image url missing url", `{"type":"image_url","image_url":{"detail":"low"}}`},
		{"refusal missing text", `{"type":"refusal"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var block ContentBlock
			err := json.Unmarshal([]byte(tt.data), &block)
			assert.ErrorIs(t, err, core.ErrMalformedContent)
		})
	}
}

func TestContentBlockEncodeMissingVariant(t *testing.T) {
	_, err := json.Marshal(ContentBlock{Type: ContentTypeText})
	assert.ErrorIs(t, err, core.ErrMalformedContent)

	_, err = json.Marshal(ContentBlock{Type: "bogus"})
	assert.ErrorIs(t, err, core.ErrUnknownContentType)
}

func TestImageDetailOmittedWhenAuto(t *testing.T) {
	data, err := json.Marshal(NewImageFileContent("file-abc", ImageDetailAuto))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "detail")

	data, err = json.Marshal(NewImageFileContent("file-abc", ImageDetailHigh))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"detail":"high"`)
}

func TestImageDetailDecodeNormalizesAbsentToAuto(t *testing.T) {
	var c ImageFileContent
	require.NoError(t, json.Unmarshal([]byte(`{"file_id":"file-abc"}`), &c))
	assert.Equal(t, ImageDetailAuto, c.Detail)
}

func TestImageDetailDecodeUnknownValue(t *testing.T) {
	var c ImageFileContent
	err := json.Unmarshal([]byte(`{"file_id":"file-abc","detail":"ultra"}`), &c)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownEnumValue)
	assert.Contains(t, err.Error(), "ultra")
}

func TestContentBlockDisplay(t *testing.T) {
	tests := []struct {
		name  string
		block ContentBlock
		want  string
	}{
		{"text", NewTextContent("hello"), "hello"},
		{"image file", NewImageFileContent("file-abc", ImageDetailAuto), "[image file file-abc]"},
		{"image url", NewImageURLContent("https://example.com/a.png", ""), "[image url https://example.com/a.png]"},
		{"refusal", NewRefusalContent("no"), "no"},
		{"empty", ContentBlock{}, "[empty content]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.Display())
		})
	}
}

func TestPrintContent(t *testing.T) {
	blocks := []ContentBlock{
		NewTextContent("first"),
		NewImageFileContent("file-abc", ImageDetailAuto),
		NewTextContent("last"),
	}

	got := PrintContent(blocks)
	assert.Equal(t, "first\n[image file file-abc]\nlast", got)
	assert.Len(t, strings.Split(got, "\n"), 3)
}
