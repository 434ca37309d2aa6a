package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	yaml := []byte("display-name: from-file\nreverse: true\nhsp-file: hits.tsv\n")
	if err := os.WriteFile(settings, yaml, 0644); err != nil {
		t.Fatal(err)
	}

	type args struct {
		flags []string
		env   map[string]string
	}
	tests := []struct {
		name string
		args args
		want *Config
	}{
		{
			"settings file",
			args{},
			&Config{DisplayName: "from-file", DisplayNameSet: true, HSPFile: "hits.tsv", Reverse: true},
		},
		{
			"environment overrides the settings file",
			args{
				env: map[string]string{"HSPBED_DISPLAY_NAME": "from-env", "HSPBED_TRANSFORM_EVALUE": "true"},
			},
			&Config{DisplayName: "from-env", DisplayNameSet: true, HSPFile: "hits.tsv", Reverse: true, TransformEvalue: true},
		},
		{
			"flags override the environment",
			args{
				flags: []string{"--display-name", "from-flag", "--bed-file", "out.bed.gz"},
				env:   map[string]string{"HSPBED_DISPLAY_NAME": "from-env"},
			},
			&Config{DisplayName: "from-flag", DisplayNameSet: true, HSPFile: "hits.tsv", BEDFile: "out.bed.gz", Reverse: true},
		},
		{
			"an empty display name flag is still set",
			args{
				flags: []string{"--display-name="},
			},
			&Config{DisplayNameSet: true, HSPFile: "hits.tsv", Reverse: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.args.env {
				t.Setenv(k, v)
			}

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.String("display-name", "", "")
			fs.String("bed-file", "", "")
			if err := fs.Parse(tt.args.flags); err != nil {
				t.Fatal(err)
			}

			v := viper.New()
			if err := v.BindPFlags(fs); err != nil {
				t.Fatal(err)
			}

			got, err := New(v, settings)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNew_missingSettings(t *testing.T) {
	if _, err := New(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("New() expected an error for a missing settings file")
	}
}

func TestNew_defaults(t *testing.T) {
	got, err := New(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, &Config{}) {
		t.Errorf("New() = %+v, want zero Config", got)
	}
}

func TestNew_unchangedDisplayNameFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("display-name", "", "")
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		t.Fatal(err)
	}

	got, err := New(v, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.DisplayNameSet {
		t.Errorf("New() DisplayNameSet = true for a flag that wasn't given")
	}
}
