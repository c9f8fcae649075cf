package utils

import "testing"

func TestPackageFromCmdline(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "主进程", data: "com.decker.shroom\x00", want: "com.decker.shroom"},
		{name: "独立进程", data: "com.decker.shroom:remote\x00", want: "com.decker.shroom"},
		{name: "带参数", data: "com.decker.shroom\x00--flag\x00", want: "com.decker.shroom"},
		{name: "末尾换行", data: "com.decker.shroom\n", want: "com.decker.shroom"},
		{name: "空内容", data: "", wantErr: true},
		{name: "只有 NUL", data: "\x00\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := packageFromCmdline([]byte(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("packageFromCmdline() = %q, want %q", got, tt.want)
			}
		})
	}
}
