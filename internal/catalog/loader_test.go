package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `
dishes:
  - id: appam
    name: Appam with Stew
    description: Lacy rice pancakes with *coconut* stew
    price: "12.50"
    category: Breakfast
  - id: meen-curry
    name: Meen Curry
    price: "24"
    category: Seafood
highlights: [meen-curry]
menu:
  - name: Breakfast
    items:
      - name: Puttu
        price: "8"
`

func writeTestFile(t *testing.T, name, body string, gz bool) string {
	path := filepath.Join(t.TempDir(), name)

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	if !gz {
		_, err = file.WriteString(body)
		require.NoError(t, err)
		return path
	}

	gzipWriter := gzip.NewWriter(file)
	_, err = gzipWriter.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())
	return path
}

func TestDecode_MergesWithDefaults(t *testing.T) {
	content, err := Decode(strings.NewReader(testDocument))
	require.NoError(t, err)

	assert.Equal(t, 2, content.Dishes.Len())
	appam, ok := content.Dishes.Get("appam")
	require.True(t, ok)
	assert.Equal(t, "12.5", appam.Price.String())
	assert.Equal(t, "USD", appam.Currency)
	assert.Contains(t, appam.DescriptionHTML, "<em>coconut</em>")

	assert.Equal(t, []string{"meen-curry"}, ids(content.Highlights))
	assert.Equal(t, []string{"Breakfast"}, content.MenuSections())

	// Sections absent from the document keep the built-in content.
	assert.Equal(t, 3, content.Rooms.Len())
	assert.Len(t, content.Features, 6)
	_, ok = content.HeroSlides(PageAccommodation)
	assert.True(t, ok)
}

func TestDecode_HighlightsFollowOverrideDishes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "no default highlight survives",
			doc:  "dishes:\n  - id: masala-dosa\n    name: Masala Dosa\n    price: \"9\"\n",
			want: []string{"masala-dosa"},
		},
		{
			name: "surviving default highlights are kept",
			doc: "dishes:\n" +
				"  - id: appam\n    price: \"12.50\"\n" +
				"  - id: beef-onion\n    price: \"30\"\n",
			want: []string{"beef-onion"},
		},
		{
			name: "leading dishes capped at the default count",
			doc: "dishes:\n" +
				"  - id: a\n    price: \"1\"\n" +
				"  - id: b\n    price: \"2\"\n" +
				"  - id: c\n    price: \"3\"\n" +
				"  - id: d\n    price: \"4\"\n",
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := Decode(strings.NewReader(tt.doc))
			require.NoError(t, err)

			assert.Equal(t, tt.want, ids(content.Highlights))
			for _, item := range content.Highlights {
				assert.True(t, content.Dishes.Has(item.ID), "highlight %s must link to a served dish", item.ID)
			}
		})
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	content, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default().Dishes.Len(), content.Dishes.Len())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed yaml", doc: "dishes: [unterminated"},
		{name: "invalid price", doc: "dishes:\n  - id: a\n    price: cheap\n"},
		{name: "missing price", doc: "dishes:\n  - id: a\n"},
		{name: "negative price", doc: "rooms:\n  - id: r\n    price: \"-1\"\n"},
		{name: "sub-cent price", doc: "dishes:\n  - id: a\n    price: \"10.555\"\n"},
		{name: "duplicate id", doc: "dishes:\n  - id: a\n    price: \"1\"\n  - id: a\n    price: \"2\"\n"},
		{name: "unknown highlight", doc: "highlights: [ghost]\n"},
		{name: "unnamed menu section", doc: "menu:\n  - items: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestEncode_RoundTripsDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Default()))

	content, err := Decode(&buf)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, ids(want.Dishes.Items()), ids(content.Dishes.Items()))
	assert.Equal(t, ids(want.Highlights), ids(content.Highlights))
	assert.Equal(t, want.MenuSections(), content.MenuSections())
	require.NotNil(t, content.Specials[0].OriginalPrice)
	assert.True(t, want.Specials[0].OriginalPrice.Equal(*content.Specials[0].OriginalPrice))
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	ctx := context.Background()

	t.Run("plain yaml", func(t *testing.T) {
		content, err := loader.Load(ctx, writeTestFile(t, "catalog.yaml", testDocument, false))
		require.NoError(t, err)
		assert.True(t, content.Dishes.Has("appam"))
	})

	t.Run("gzipped yaml", func(t *testing.T) {
		content, err := loader.Load(ctx, writeTestFile(t, "catalog.yaml.gz", testDocument, true))
		require.NoError(t, err)
		assert.True(t, content.Dishes.Has("meen-curry"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("not gzipped", func(t *testing.T) {
		_, err := loader.Load(ctx, writeTestFile(t, "catalog.gz", testDocument, false))
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := loader.Load(cancelled, writeTestFile(t, "catalog.yaml", testDocument, false))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type fakeObjectGetter struct {
	body string
	err  error
	key  string
}

func (f *fakeObjectGetter) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.key = aws.ToString(params.Key)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestS3Loader_Load(t *testing.T) {
	getter := &fakeObjectGetter{body: testDocument}
	loader := newS3Loader(getter, "heritage-content", zerolog.Nop())

	content, err := loader.Load(context.Background(), "catalog/site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "catalog/site.yaml", getter.key)
	assert.True(t, content.Dishes.Has("appam"))

	failing := newS3Loader(&fakeObjectGetter{err: errors.New("access denied")}, "heritage-content", zerolog.Nop())
	_, err = failing.Load(context.Background(), "catalog/site.yaml")
	assert.ErrorContains(t, err, "access denied")
}

type mockLoader struct {
	loadFunc func(ctx context.Context, path string) (*Content, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) (*Content, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func TestFallbackLoader(t *testing.T) {
	ctx := context.Background()
	fromS3 := Default()
	fromFile := Default()

	t.Run("s3 success", func(t *testing.T) {
		remote := &mockLoader{loadFunc: func(_ context.Context, path string) (*Content, error) {
			assert.Equal(t, "catalog/site.yaml", path, "S3 key should have prefix")
			return fromS3, nil
		}}
		file := &mockLoader{loadFunc: func(context.Context, string) (*Content, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		}}

		got, err := NewFallbackLoader(remote, file, "catalog/", true, zerolog.Nop()).Load(ctx, "site.yaml")
		require.NoError(t, err)
		assert.Same(t, fromS3, got)
	})

	t.Run("s3 failure falls back to file", func(t *testing.T) {
		remote := &mockLoader{loadFunc: func(context.Context, string) (*Content, error) {
			return nil, errors.New("S3 connection failed")
		}}
		file := &mockLoader{loadFunc: func(_ context.Context, path string) (*Content, error) {
			assert.Equal(t, "site.yaml", path, "local path should not have prefix")
			return fromFile, nil
		}}

		got, err := NewFallbackLoader(remote, file, "catalog/", true, zerolog.Nop()).Load(ctx, "site.yaml")
		require.NoError(t, err)
		assert.Same(t, fromFile, got)
	})

	t.Run("s3 disabled", func(t *testing.T) {
		remote := &mockLoader{loadFunc: func(context.Context, string) (*Content, error) {
			t.Error("S3 loader should not be called when disabled")
			return nil, errors.New("should not be called")
		}}
		file := &mockLoader{loadFunc: func(context.Context, string) (*Content, error) {
			return fromFile, nil
		}}

		got, err := NewFallbackLoader(remote, file, "catalog/", false, zerolog.Nop()).Load(ctx, "site.yaml")
		require.NoError(t, err)
		assert.Same(t, fromFile, got)
	})
}

func TestLoadOrDefault(t *testing.T) {
	ctx := context.Background()
	failing := &mockLoader{}

	assert.Equal(t, 6, LoadOrDefault(ctx, failing, "", zerolog.Nop()).Dishes.Len())
	assert.Equal(t, 6, LoadOrDefault(ctx, failing, "site.yaml", zerolog.Nop()).Dishes.Len())

	custom := &mockLoader{loadFunc: func(context.Context, string) (*Content, error) {
		return &Content{Dishes: MustNew(testItems())}, nil
	}}
	assert.Equal(t, 3, LoadOrDefault(ctx, custom, "site.yaml", zerolog.Nop()).Dishes.Len())
}
