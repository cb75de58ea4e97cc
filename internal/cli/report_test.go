package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pkg.jsn.cam/salondata/pkg/salondata"
)

func TestRunReport(t *testing.T) {
	cspec := salondata.DefaultCustomerSpec(100)
	ospec := salondata.OrderSpec{
		OrdersPerDay: 5,
		Start:        salondata.Date(2024, time.March, 1),
		End:          salondata.Date(2024, time.March, 31),
	}
	data, err := salondata.Generate(cspec, ospec, salondata.SeedFromString("report test"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dataset.txt")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	var buf bytes.Buffer
	if err := runReport(&buf, path); err != nil {
		t.Fatalf("runReport failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Total revenue:",
		"Revenue in March 2024:",
		"Revenue on Mondays:",
		"Revenue M:",
		"Revenue F:",
		"Revenue X:",
		"Average price of a haircut: €38.70.",
		"Revenue after price change:",
		"Revenue after discount (no Wavy):",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q", want)
		}
	}
}

func TestRunReportMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := runReport(&buf, filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing dataset file")
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"generate", "report"} {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}
