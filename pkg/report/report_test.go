package report

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	yaml "go.yaml.in/yaml/v3"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/bbox"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/stats"
)

var sampleLayout = stats.LayoutReport{
	Records: []stats.LayoutRecord{
		{DocumentID: "00040534", Width: 762, Height: 1000, AspectRatio: 0.76},
		{DocumentID: "660978", Width: 1200, Height: 800, AspectRatio: 1.5},
		{DocumentID: "missing"},
	},
	MinWidth: 0,
	MaxWidth: 1200,
}

func TestWriteLayoutCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLayoutCSV(&buf, sampleLayout.Records))

	expected := "Document ID,Original Width (W),Original Height (H),Aspect Ratio (W/H)\n" +
		"00040534,762,1000,0.76\n" +
		"660978,1200,800,1.5\n" +
		"missing,0,0,0\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteLayoutCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLayoutCSV(&buf, nil))
	assert.Equal(t, strings.Join(LayoutHeader, ",")+"\n", buf.String())
}

func TestWriteCentersCSV(t *testing.T) {
	var buf bytes.Buffer
	centers := []stats.Center{
		{DocumentID: "00040534", Label: "question", X: 193.5, Y: 116.5},
		{DocumentID: "00040534", Label: "answer", X: 750, Y: 750},
	}
	require.NoError(t, WriteCentersCSV(&buf, centers))

	expected := "Document ID,Label,X,Y\n" +
		"00040534,question,193.5,116.5\n" +
		"00040534,answer,750,750\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteLayoutXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLayoutXLSX(&buf, sampleLayout))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, layoutSheet, f.GetSheetName(0))

	rows, err := f.GetRows(layoutSheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, LayoutHeader, rows[0])
	assert.Equal(t, []string{"00040534", "762", "1000", "0.76"}, rows[1])
	assert.Equal(t, []string{"660978", "1200", "800", "1.5"}, rows[2])
	assert.Equal(t, []string{"missing", "0", "0", "0"}, rows[3])
	assert.Empty(t, rows[4])
	assert.Equal(t, []string{"Min Width", "0"}, rows[5])
	assert.Equal(t, []string{"Max Width", "1200"}, rows[6])

	width, err := f.GetColWidth(layoutSheet, "A")
	require.NoError(t, err)
	assert.Equal(t, 24.0, width)
	width, err = f.GetColWidth(layoutSheet, "D")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.csv")
	err := SaveFile(path, func(w io.Writer) error {
		return WriteLayoutCSV(w, sampleLayout.Records[:1])
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "00040534,762,1000,0.76")

	err = SaveFile(filepath.Join(t.TempDir(), "missing", "layout.csv"), func(w io.Writer) error { return nil })
	assert.Error(t, err)
}

func isColor(c color.Color, want color.NRGBA) bool {
	return color.NRGBAModel.Convert(c).(color.NRGBA) == want
}

func TestRenderScatter(t *testing.T) {
	img := RenderScatter([]bbox.Point{{X: 250, Y: 250}, {X: 1000, Y: 1000}, {X: 750.4, Y: 120.6}}, 0)

	require.Equal(t, bbox.Scale+1, img.Bounds().Dx())
	require.Equal(t, bbox.Scale+1, img.Bounds().Dy())

	assert.True(t, isColor(img.At(50, 50), plotBackground), "empty cell should be background")
	assert.True(t, isColor(img.At(100, 50), plotGrid), "x=100 should be a grid line")
	assert.True(t, isColor(img.At(50, 300), plotGrid), "y=300 should be a grid line")

	for _, p := range [][2]int{{250, 250}, {750, 121}, {1000, 1000}, {998, 998}} {
		c := color.NRGBAModel.Convert(img.At(p[0], p[1])).(color.NRGBA)
		assert.False(t, c == plotBackground || c == plotGrid, "expected a point at %v, got %v", p, c)
		assert.Greater(t, c.R, c.G, "point color should be violet at %v", p)
	}
}

func TestRenderScatterResize(t *testing.T) {
	img := RenderScatter(nil, 500)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestSaveScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "centers.png")
	require.NoError(t, SaveScatter(path, []bbox.Point{{X: 500, Y: 500}}, 200))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	assert.Error(t, SaveScatter(filepath.Join(t.TempDir(), "centers.unknown"), nil, 10))
}

func TestRenderLabelBars(t *testing.T) {
	counts := stats.LabelCounts{Meaningful: 6, Irrelevant: 4, Total: 10}
	img := RenderLabelBars(counts, 400)

	require.Equal(t, 400, img.Bounds().Dx())
	require.Equal(t, 400, img.Bounds().Dy())

	// the tallest bar spans the plot, the other is scaled to 4/6 of it
	assert.True(t, isColor(img.At(120, 80), barMeaningful), "meaningful bar should reach the top")
	assert.True(t, isColor(img.At(120, 359), barMeaningful))
	assert.True(t, isColor(img.At(280, 173), barIrrelevant), "irrelevant bar top")
	assert.True(t, isColor(img.At(280, 359), barIrrelevant))
	assert.True(t, isColor(img.At(280, 150), plotBackground), "nothing above the irrelevant bar label")
	assert.True(t, isColor(img.At(200, 250), plotBackground), "gap between bars")
	assert.True(t, isColor(img.At(200, 360), plotText), "axis")

	inked := func(r image.Rectangle) int {
		n := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if isColor(img.At(x, y), plotText) {
					n++
				}
			}
		}
		return n
	}
	assert.Positive(t, inked(image.Rect(90, 60, 150, 80)), "percent label above the meaningful bar")
	assert.Positive(t, inked(image.Rect(250, 153, 310, 173)), "percent label above the irrelevant bar")
	assert.Positive(t, inked(image.Rect(60, 362, 180, 380)), "category name below the meaningful bar")
}

func TestRenderLabelBarsWithoutTokens(t *testing.T) {
	img := RenderLabelBars(stats.LabelCounts{}, 0)

	require.Equal(t, DefaultBarsSize, img.Bounds().Dx())
	assert.True(t, isColor(img.At(180, 400), plotBackground), "no bars without tokens")
	assert.True(t, isColor(img.At(300, 540), plotText), "axis")
}

func TestSaveLabelBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.png")
	require.NoError(t, SaveLabelBars(path, stats.LabelCounts{Meaningful: 1, Irrelevant: 3, Total: 4}, 300))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
}

func TestSummaryRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	config := RunConfig{
		Command:       "labels",
		ImageDir:      "images",
		AnnotationDir: "annotations",
		ImageExt:      "png",
		DocumentIDs:   []string{"00040534", "660978"},
		Timestamp:     "2025-01-02_03-04-05",
	}

	counts := stats.LabelCounts{Meaningful: 6, Irrelevant: 4, Total: 10, ByLabel: map[string]int{"question": 6, "other": 4}}
	path, err := SaveSummary(dir, Summary{Config: config, Labels: NewLabelSummary(counts)})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "labels_2025-01-02_03-04-05.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	labels, ok := raw["labels"].(map[string]any)
	require.True(t, ok, "labels section missing: %s", data)
	assert.Equal(t, 6, labels["meaningful"])
	assert.EqualValues(t, 40, labels["imbalance_percent"])
	assert.NotContains(t, raw, "layout")

	loaded, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Command, loaded.Command)
	assert.Equal(t, config.DocumentIDs, loaded.DocumentIDs)
	assert.Equal(t, config.ImageExt, loaded.ImageExt)
	assert.NotEqual(t, config.Timestamp, loaded.Timestamp)
}

func TestNewLabelSummaryWithoutTokens(t *testing.T) {
	s := NewLabelSummary(stats.LabelCounts{})
	assert.Nil(t, s.ImbalancePercent)
	assert.Nil(t, s.MeaningfulPercent)
}

func TestLoadRunConfigErrors(t *testing.T) {
	_, err := LoadRunConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("config: [unterminated"), 0644))
	_, err = LoadRunConfig(bad)
	assert.Error(t, err)
}
