package graphviz_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Brandhoej/perfdar/examples"
	"github.com/Brandhoej/perfdar/graphviz"
)

func TestWriter_Flush(t *testing.T) {
	door := examples.Door()
	cfg := &graphviz.Config{
		Font:    graphviz.Helvetica,
		RankDir: graphviz.LeftToRight,
	}
	var buffer bytes.Buffer
	w := graphviz.New(cfg)
	if err := w.Flush(&buffer, door); err != nil {
		t.Fatal(err)
	}
	rendered := buffer.String()
	if rendered == "" {
		t.Fatal("nothing rendered")
	}
	for _, want := range []string{"closed", "open", "lock?", "!locked"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered figure should mention %q", want)
		}
	}
}
