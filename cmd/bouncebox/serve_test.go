package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "Connect with: ssh localhost -p 23234"},
		{":2222", "Connect with: ssh localhost -p 2222"},
		{"0.0.0.0:2200", "Connect with: ssh localhost -p 2200"},
		{"example.com:2022", "Connect with: ssh example.com -p 2022"},
		{"[::]:2023", "Connect with: ssh localhost -p 2023"},
		{":22", "Connect with: ssh localhost"},
		{"nohostport", "Connect with: ssh nohostport"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := connectHint(tt.addr); got != tt.want {
				t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
