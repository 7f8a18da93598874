package platform

import (
	"context"
	"runtime"
	"testing"
)

// MockDetector is a test implementation of Detector.
type MockDetector struct {
	info *Info
	err  error
}

// NewMockDetector creates a mock detector with specified return values.
func NewMockDetector(info *Info, err error) Detector {
	return &MockDetector{info: info, err: err}
}

// Detect returns the pre-configured info and error.
func (m *MockDetector) Detect(ctx context.Context) (*Info, error) {
	return m.info, m.err
}

func TestRealDetector_Detect(t *testing.T) {
	detector := NewDetector()
	ctx := context.Background()

	info, err := detector.Detect(ctx)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	// Verify OS detection
	if info.OS != runtime.GOOS {
		t.Errorf("OS = %v, want %v", info.OS, runtime.GOOS)
	}

	// Verify architecture detection
	if info.Arch == "" {
		t.Error("Arch should not be empty")
	}
	if info.Arch != "amd64" && info.Arch != "arm64" {
		t.Errorf("Arch = %v, want amd64 or arm64", info.Arch)
	}

	// Verify ArchRaw is set
	if info.ArchRaw != runtime.GOARCH {
		t.Errorf("ArchRaw = %v, want %v", info.ArchRaw, runtime.GOARCH)
	}

	// On Linux, Family must accompany Platform (may both be empty if
	// distro detection fell back gracefully)
	if runtime.GOOS == "linux" {
		if info.Platform != "" && info.Family == "" {
			t.Error("Family should be set when Platform is set")
		}
	}

	// On non-Linux, distro fields should be empty
	if runtime.GOOS != "linux" {
		if info.Platform != "" {
			t.Errorf("Platform should be empty on non-Linux, got %v", info.Platform)
		}
		if info.Family != "" {
			t.Errorf("Family should be empty on non-Linux, got %v", info.Family)
		}
		if info.Version != "" {
			t.Errorf("Version should be empty on non-Linux, got %v", info.Version)
		}
	}
}

func TestRealDetector_Detect_CancelledContext(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("cancellation path only reachable on Linux")
	}

	detector := NewDetector()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled context either fails hard or gopsutil answers from
	// cache before noticing; both are acceptable, but a returned Info
	// must still carry OS and arch.
	info, err := detector.Detect(ctx)
	if err == nil {
		if info.OS != runtime.GOOS {
			t.Errorf("OS = %v, want %v", info.OS, runtime.GOOS)
		}
	}
}

func TestInfo_OSPredicates(t *testing.T) {
	tests := []struct {
		name        string
		info        *Info
		wantLinux   bool
		wantMacOS   bool
		wantWindows bool
	}{
		{"linux", &Info{OS: "linux", Arch: "amd64"}, true, false, false},
		{"darwin", &Info{OS: "darwin", Arch: "arm64"}, false, true, false},
		{"windows", &Info{OS: "windows", Arch: "amd64"}, false, false, true},
		{"empty", &Info{}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.IsLinux(); got != tt.wantLinux {
				t.Errorf("IsLinux() = %v, want %v", got, tt.wantLinux)
			}
			if got := tt.info.IsMacOS(); got != tt.wantMacOS {
				t.Errorf("IsMacOS() = %v, want %v", got, tt.wantMacOS)
			}
			if got := tt.info.IsWindows(); got != tt.wantWindows {
				t.Errorf("IsWindows() = %v, want %v", got, tt.wantWindows)
			}
		})
	}
}
