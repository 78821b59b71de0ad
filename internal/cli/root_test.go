package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ami93120/mosque-calendar/internal/calendar"
	"github.com/ami93120/mosque-calendar/internal/datasource"
	"github.com/ami93120/mosque-calendar/internal/prayer"
)

// resetFlags clears the package-level flag state an earlier Execute may
// have left behind.
func resetFlags() {
	FlagConfigPath = ""
	FlagClient = ""
	FlagClientsDir = ""
	FlagCacheDir = ""
	FlagOverrides = ""
	FlagLatitude = 0
	FlagLongitude = 0
	FlagAsrMethod = ""
	FlagNoRefresh = false
	flagConvertStart = ""
	flagConvertOutput = ""
	flagThemeOutput = ""
	loadedConfig = nil
	loadedClient = nil
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd("test")

	want := []string{"month", "year", "ramadan", "refresh", "convert", "config"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	if root.Version != "test" {
		t.Errorf("version = %q, want test", root.Version)
	}
	for _, flag := range []string{"config", "client", "clients-dir", "cache-dir", "overrides", "latitude", "longitude", "asr-method", "no-refresh"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not registered", flag)
		}
	}
}

func TestConvertCommand(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	in := filepath.Join(dir, "timetable.tsv")
	table := "Fajr\tSunrise\tDhuhr\tAsr\tMaghrib\tIsha\n" +
		"05:55\t07:35\t12:58\t15:45\t18:10\t19:40\n" +
		"05:53\t07:33\t12:58\t15:46\t18:11\t19:42\n"
	if err := os.WriteFile(in, []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "overrides.json")

	root := NewRootCmd("test")
	root.SetArgs([]string{
		"convert", in,
		"--start", "2027-02-07",
		"--output", out,
		// A missing config file falls back to defaults; pointing at the
		// temp dir keeps the test independent of the host setup.
		"--config", filepath.Join(dir, "no-config.json"),
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	var ov prayer.Overrides
	if err := json.Unmarshal(data, &ov); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(ov) != 2 {
		t.Fatalf("got %d days, want 2", len(ov))
	}
	if ov["2027-02-07"].Fajr != "05:55" || ov["2027-02-08"].Isha != "19:42" {
		t.Errorf("overrides = %+v", ov)
	}
}

func TestConvertCommand_RequiresStart(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	in := filepath.Join(dir, "t.tsv")
	if err := os.WriteFile(in, []byte("05:55\t07:35\t12:58\t15:45\t18:10\t19:40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd("test")
	root.SetArgs([]string{"convert", in, "--config", filepath.Join(dir, "none.json")})
	if err := root.Execute(); err == nil {
		t.Error("convert without --start succeeded")
	}
}

func TestLoadConfigForRun_ClientOverlay(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	clientsDir := filepath.Join(dir, "clients")
	if err := os.MkdirAll(clientsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{
		"identity": {"name_fr": "Mosquée Assalam"},
		"location": {"lat": 43.2965, "lng": 5.3698}
	}`
	if err := os.WriteFile(filepath.Join(clientsDir, "assalam.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd("test")
	root.SetArgs([]string{
		"config",
		"--config", filepath.Join(dir, "missing.json"),
		"--client", "assalam",
		"--clients-dir", clientsDir,
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if loadedConfig == nil {
		t.Fatal("config not loaded")
	}
	if loadedConfig.Latitude != 43.2965 || loadedConfig.Longitude != 5.3698 {
		t.Errorf("client coordinates not applied: %v/%v", loadedConfig.Latitude, loadedConfig.Longitude)
	}
	// Everything else stays at defaults.
	if loadedConfig.Timezone != "Europe/Paris" {
		t.Errorf("timezone = %q", loadedConfig.Timezone)
	}
	// The document itself stays available for rendering.
	if loadedClient == nil || loadedClient.Identity.NameFR != "Mosquée Assalam" {
		t.Errorf("client document not retained: %+v", loadedClient)
	}
}

func TestRenderThenRefresh(t *testing.T) {
	resetFlags()
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/feries") {
			fmt.Fprint(w, `{"2027-07-14": "14 juillet"}`)
			return
		}
		http.Error(w, "unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := datasource.NewClient()
	client.PublicHolidaysURL = srv.URL + "/feries"
	// The school fetch failing still counts as an update.
	client.SchoolCalendarURL = srv.URL + "/school"

	cal := &calendar.Calendar{}
	ctx := &renderContext{
		cal: cal,
		src: datasource.New(client, nil, cal, calendar.NewClassifier(loc), loc, "Zone C", "Créteil"),
	}

	renders := 0
	renderThenRefresh(ctx, func() { renders++ })
	if renders != 2 {
		t.Errorf("rendered %d times, want 2 (initial + after update)", renders)
	}
	if cal.PublicHolidays["2027-07-14"] != "14 juillet" {
		t.Errorf("refresh did not apply: %v", cal.PublicHolidays)
	}

	// --no-refresh renders exactly once and never touches the network.
	FlagNoRefresh = true
	defer func() { FlagNoRefresh = false }()
	renders = 0
	renderThenRefresh(ctx, func() { renders++ })
	if renders != 1 {
		t.Errorf("rendered %d times with --no-refresh, want 1", renders)
	}
}

func TestLoadConfigForRun_MissingClientIsFatal(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	root := NewRootCmd("test")
	root.SetArgs([]string{
		"config",
		"--config", filepath.Join(dir, "missing.json"),
		"--client", "ghost",
		"--clients-dir", dir,
	})
	if err := root.Execute(); err == nil {
		t.Error("missing client document did not block the run")
	}
}

func TestLoadConfigForRun_FlagOverrides(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	root := NewRootCmd("test")
	root.SetArgs([]string{
		"config",
		"--config", filepath.Join(dir, "missing.json"),
		"--latitude", "45.75",
		"--asr-method", "Hanafi",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if loadedConfig.Latitude != 45.75 {
		t.Errorf("latitude = %v, want 45.75", loadedConfig.Latitude)
	}
	if loadedConfig.AsrMethod != "Hanafi" {
		t.Errorf("asr method = %q, want Hanafi", loadedConfig.AsrMethod)
	}
	// Longitude flag unset keeps the file/default value.
	if loadedConfig.Longitude != 2.3967 {
		t.Errorf("longitude = %v, want default", loadedConfig.Longitude)
	}
}
