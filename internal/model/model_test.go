package model

import "testing"

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestValidateProjectStatus(t *testing.T) {
	valid := []ProjectStatus{ProjectActive, ProjectInactive, ProjectArchived, ProjectCompleted, ProjectOnHold}
	for _, s := range valid {
		if err := ValidateProjectStatus(s); err != nil {
			t.Errorf("ValidateProjectStatus(%q) unexpected error: %v", s, err)
		}
	}
	if err := ValidateProjectStatus("paused"); err == nil {
		t.Error("ValidateProjectStatus('paused') expected error, got nil")
	}
}

func TestValidateSprintStatus(t *testing.T) {
	valid := []SprintStatus{SprintPlanning, SprintActive, SprintCompleted, SprintCancelled}
	for _, s := range valid {
		if err := ValidateSprintStatus(s); err != nil {
			t.Errorf("ValidateSprintStatus(%q) unexpected error: %v", s, err)
		}
	}
	if err := ValidateSprintStatus("done"); err == nil {
		t.Error("ValidateSprintStatus('done') expected error, got nil")
	}
}

func TestValidateTicketEnums(t *testing.T) {
	for _, ty := range []TicketType{TicketTask, TicketBug, TicketStory} {
		if err := ValidateTicketType(ty); err != nil {
			t.Errorf("ValidateTicketType(%q) unexpected error: %v", ty, err)
		}
	}
	if err := ValidateTicketType("epic"); err == nil {
		t.Error("ValidateTicketType('epic') expected error, got nil")
	}

	for _, s := range []TicketState{TicketTodo, TicketInProgress, TicketQA, TicketDone} {
		if err := ValidateTicketState(s); err != nil {
			t.Errorf("ValidateTicketState(%q) unexpected error: %v", s, err)
		}
	}
	if err := ValidateTicketState("review"); err == nil {
		t.Error("ValidateTicketState('review') expected error, got nil")
	}
}

func TestValidatePriority(t *testing.T) {
	valid := []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityNone}
	for _, p := range valid {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("ValidatePriority(%q) unexpected error: %v", p, err)
		}
	}
	if err := ValidatePriority("urgent"); err == nil {
		t.Error("ValidatePriority('urgent') expected error, got nil")
	}
}

func TestValidateTeamRole(t *testing.T) {
	for _, r := range []TeamRole{RoleLeader, RoleMember, RoleObserver} {
		if err := ValidateTeamRole(r); err != nil {
			t.Errorf("ValidateTeamRole(%q) unexpected error: %v", r, err)
		}
	}
	if err := ValidateTeamRole("admin"); err == nil {
		t.Error("ValidateTeamRole('admin') expected error, got nil")
	}
}

func TestValidateProjectKey(t *testing.T) {
	for _, key := range []string{"AP", "APL", "WEB2", "X1234567Y9"} {
		if err := ValidateProjectKey(key); err != nil {
			t.Errorf("ValidateProjectKey(%q) unexpected error: %v", key, err)
		}
	}
	for _, key := range []string{"", "a", "apl", "1AB", "TOOLONGKEY1", "AP L"} {
		if err := ValidateProjectKey(key); err == nil {
			t.Errorf("ValidateProjectKey(%q) expected error, got nil", key)
		}
	}
}

func TestFormatTicketKey(t *testing.T) {
	if got := FormatTicketKey("APL", 12); got != "APL-12" {
		t.Errorf("FormatTicketKey = %q, want %q", got, "APL-12")
	}
}

func TestParseTicketKey(t *testing.T) {
	tests := []struct {
		input      string
		wantPrefix string
		wantN      int
		wantErr    bool
	}{
		{"APL-12", "APL", 12, false},
		{"apl-12", "APL", 12, false},
		{" WEB2-1 ", "WEB2", 1, false},
		{"", "", 0, true},
		{"APL", "", 0, true},
		{"APL-", "", 0, true},
		{"-12", "", 0, true},
		{"APL-0", "", 0, true},
		{"APL-x", "", 0, true},
	}

	for _, tt := range tests {
		prefix, n, err := ParseTicketKey(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTicketKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if prefix != tt.wantPrefix || n != tt.wantN {
			t.Errorf("ParseTicketKey(%q) = (%q, %d), want (%q, %d)", tt.input, prefix, n, tt.wantPrefix, tt.wantN)
		}
	}
}

func TestStatusColors(t *testing.T) {
	if c := ProjectActive.Color(); c != "green" {
		t.Errorf("ProjectActive.Color() = %q, want green", c)
	}
	if c := TicketInProgress.Color(); c != "yellow" {
		t.Errorf("TicketInProgress.Color() = %q, want yellow", c)
	}
	if c := PriorityCritical.Color(); c != "red" {
		t.Errorf("PriorityCritical.Color() = %q, want red", c)
	}
	if i := PriorityCritical.Icon(); i != "!!!" {
		t.Errorf("PriorityCritical.Icon() = %q, want !!!", i)
	}
}
