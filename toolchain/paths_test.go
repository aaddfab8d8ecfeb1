package toolchain

import (
	"reflect"
	"testing"
)

func TestSystemIncludeDirs(t *testing.T) {
	tests := []struct {
		name    string
		sysroot string
		spec    LinkSpec
		want    []string
	}{
		{
			name:    "default",
			sysroot: "/target",
			want: []string{
				"/opt/kush/resource/include",
				"/target/System/Includes",
				"/target/Local/Includes",
			},
		},
		{
			name:    "no_builtin_includes",
			sysroot: "/target",
			spec:    LinkSpec{NoBuiltinInc: true},
			want: []string{
				"/target/System/Includes",
				"/target/Local/Includes",
			},
		},
		{
			name:    "no_stdlib_includes",
			sysroot: "/target",
			spec:    LinkSpec{NoStdlibInc: true},
			want:    []string{"/opt/kush/resource/include"},
		},
		{
			name:    "no_includes_at_all",
			sysroot: "/target",
			spec:    LinkSpec{NoStdInc: true},
			want:    nil,
		},
		{
			name:    "no_sysroot",
			sysroot: "",
			want:    []string{"/opt/kush/resource/include"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.sysroot)

			got := cfg.SystemIncludeDirs(&tt.spec)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathResolutionIsIdempotent(t *testing.T) {
	cfg := testConfig("/target")
	spec := &LinkSpec{}

	if !reflect.DeepEqual(cfg.SystemIncludeDirs(spec), cfg.SystemIncludeDirs(spec)) {
		t.Error("SystemIncludeDirs is not idempotent")
	}
	if !reflect.DeepEqual(cfg.CXXStdlibIncludeDirs(spec), cfg.CXXStdlibIncludeDirs(spec)) {
		t.Error("CXXStdlibIncludeDirs is not idempotent")
	}
	if !reflect.DeepEqual(cfg.FilePaths(), cfg.FilePaths()) {
		t.Error("FilePaths is not idempotent")
	}
}

func TestLibrarySearchPathTiers(t *testing.T) {
	cfg := testConfig("/target")

	want := []string{
		"/target/System/Libraries",
		"/target/Local/Libraries",
	}
	if got := cfg.FilePaths(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if got := NewConfig("", "/r", nil).FilePaths(); len(got) != 0 {
		t.Errorf("expected no library paths without a sysroot, got %v", got)
	}
}

func TestCXXStdlibIncludeDirs(t *testing.T) {
	cfg := testConfig("/target")

	want := []string{"/target/System/Includes/c++/v1"}
	if got := cfg.CXXStdlibIncludeDirs(&LinkSpec{}); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, spec := range []LinkSpec{
		{NoStdInc: true},
		{NoStdlibInc: true},
		{NoStdIncCxx: true},
	} {
		if got := cfg.CXXStdlibIncludeDirs(&spec); got != nil {
			t.Errorf("expected suppressed c++ include dirs, got %v", got)
		}
	}

	if got := NewConfig("", "/r", nil).CXXStdlibIncludeDirs(&LinkSpec{}); got != nil {
		t.Errorf("expected no c++ include dirs without a sysroot, got %v", got)
	}
}

func TestTargetCodeGenArgs(t *testing.T) {
	cfg := testConfig("/target")

	want := []string{"-ffunction-sections", "-fdata-sections"}
	if got := cfg.TargetCodeGenArgs(true); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	want = []string{"-fno-use-init-array", "-ffunction-sections", "-fdata-sections"}
	if got := cfg.TargetCodeGenArgs(false); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
