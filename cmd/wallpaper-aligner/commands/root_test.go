package commands

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper-aligner/internal/domain"
	"wallpaper-aligner/internal/store"
)

const twoDisplayLayout = `displays:
  - name: left
    x: -20
    y: 0
    width: 20
    height: 10
  - name: right
    x: 0
    y: 0
    width: 10
    height: 10
`

func setup(t *testing.T) (dir, layout string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	dir = t.TempDir()
	layout = filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(layout, []byte(twoDisplayLayout), 0o644))
	return dir, layout
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	appCtx = nil
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func decodeJPEG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRoot_ComposesColors(t *testing.T) {
	dir, layout := setup(t)

	out, err := run(t, "", "--layout", layout, "-f", "-o", filepath.Join(dir, "out"), "#FF0000", "#00F")
	require.NoError(t, err)
	assert.Contains(t, out, "Done!")

	img := decodeJPEG(t, filepath.Join(dir, "out.jpg"))
	assert.Equal(t, image.Rect(0, 0, 30, 10), img.Bounds())
	r, _, b, _ := img.At(5, 5).RGBA()
	assert.Greater(t, r, b, "left display is red")
	r, _, b, _ = img.At(25, 5).RGBA()
	assert.Greater(t, b, r, "right display is blue")
}

func TestRoot_CountMismatch(t *testing.T) {
	dir, layout := setup(t)

	out, err := run(t, "", "--layout", layout, "-o", filepath.Join(dir, "out"), "#FF0000")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "Detected 2 displays but you provided 1 image, please check the arguments and try again.")
	assert.Contains(t, out, "Detected displays (2 total):")
	assert.Contains(t, out, "1. left (20x10)")
	assert.NoFileExists(t, filepath.Join(dir, "out.jpg"))
}

func TestRoot_CountMismatchDoesNotRepeatDisplays(t *testing.T) {
	_, layout := setup(t)

	out, err := run(t, "", "--layout", layout, "-d", "#FF0000")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, 1, strings.Count(out, "Detected displays"))
}

func TestRoot_ShowDisplays(t *testing.T) {
	_, layout := setup(t)

	out, err := run(t, "", "--layout", layout, "-d")
	require.NoError(t, err)
	assert.Contains(t, out, "Detected displays (2 total):")
	assert.Contains(t, out, "2. right (10x10)")
	assert.NotContains(t, out, "Done!")
}

func TestRoot_NoArgsPrintsHelp(t *testing.T) {
	setup(t)

	out, err := run(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--displays")
}

func TestRoot_InvalidSource(t *testing.T) {
	dir, layout := setup(t)

	_, err := run(t, "", "--layout", layout, "-f", "-o", filepath.Join(dir, "out"), filepath.Join(dir, "missing.png"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestRoot_InvalidMode(t *testing.T) {
	_, layout := setup(t)

	_, err := run(t, "", "--layout", layout, "-m", "zoom", "", "")
	assert.Error(t, err)
}

func TestRoot_ConfirmOverwrite(t *testing.T) {
	dir, layout := setup(t)
	path := filepath.Join(dir, "existing.jpg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	out, err := run(t, "y", "--layout", layout, "-o", path, "#FFF", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Done!")
	assert.Equal(t, image.Rect(0, 0, 30, 10), decodeJPEG(t, path).Bounds())
}

func TestRoot_CancelledPromptKeepsFile(t *testing.T) {
	dir, layout := setup(t)
	path := filepath.Join(dir, "existing.jpg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := run(t, "\x03", "--layout", layout, "-o", path, "", "")
	require.ErrorIs(t, err, domain.ErrPromptCancelled)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))
}

func TestRoot_ClosedStdinKeepsFile(t *testing.T) {
	dir, layout := setup(t)
	path := filepath.Join(dir, "existing.jpg")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	done := make(chan error, 1)
	go func() {
		_, err := run(t, "", "--layout", layout, "-o", path, "", "")
		done <- err
	}()

	select {
	case err := <-done:
		require.ErrorIs(t, err, domain.ErrPromptCancelled)
	case <-time.After(5 * time.Second):
		t.Fatal("overwrite prompt did not return on closed stdin")
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))
}

func TestLayoutExport(t *testing.T) {
	dir, layout := setup(t)

	out, err := run(t, "", "layout", "export", "--layout", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "displays:")
	assert.Contains(t, out, "name: left")
	assert.Contains(t, out, "x: -20")

	exported := filepath.Join(dir, "exported", "layout.yaml")
	out, err = run(t, "", "layout", "export", exported, "--layout", layout)
	require.NoError(t, err)
	assert.Contains(t, out, "Layout written to")

	cfg, err := store.NewLayoutFileStore().LoadLayout(exported)
	require.NoError(t, err)
	require.Len(t, cfg.Displays, 2)
	assert.Equal(t, domain.Rect(-20, 0, 20, 10), cfg.Displays[0].Bounds)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "wallpaper-aligner dev\n", out)
}

type scriptedPrompter struct {
	confirms []bool
	names    []string
	asked    []string
}

func (s *scriptedPrompter) ConfirmOverwrite(path string) (bool, error) {
	s.asked = append(s.asked, path)
	ok := s.confirms[0]
	s.confirms = s.confirms[1:]
	return ok, nil
}

func (s *scriptedPrompter) AskFilename() (string, error) {
	name := s.names[0]
	s.names = s.names[1:]
	return name, nil
}

func TestResolveOutput(t *testing.T) {
	dir := t.TempDir()
	taken := filepath.Join(dir, "taken.jpg")
	alsoTaken := filepath.Join(dir, "also.jpg")
	require.NoError(t, os.WriteFile(taken, nil, 0o644))
	require.NoError(t, os.WriteFile(alsoTaken, nil, 0o644))

	t.Run("free name", func(t *testing.T) {
		pr := &scriptedPrompter{}
		path, err := resolveOutput(pr, filepath.Join(dir, "free"), false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "free.jpg"), path)
		assert.Empty(t, pr.asked)
	})

	t.Run("force skips prompts", func(t *testing.T) {
		path, err := resolveOutput(&scriptedPrompter{}, taken, true)
		require.NoError(t, err)
		assert.Equal(t, taken, path)
	})

	t.Run("rename until free", func(t *testing.T) {
		pr := &scriptedPrompter{
			confirms: []bool{false, false},
			names:    []string{filepath.Join(dir, "also"), filepath.Join(dir, "fresh.jpeg")},
		}
		path, err := resolveOutput(pr, taken, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "fresh.jpeg"), path)
		assert.Equal(t, []string{taken, alsoTaken}, pr.asked)
	})

	t.Run("accept overwrite", func(t *testing.T) {
		pr := &scriptedPrompter{confirms: []bool{true}}
		path, err := resolveOutput(pr, taken, false)
		require.NoError(t, err)
		assert.Equal(t, taken, path)
	})
}
