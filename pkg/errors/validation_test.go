package errors

import "testing"

func TestValidateHeight(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 6, false},
		{"max", MaxHeight, false},
		{"negative", -1, true},
		{"too large", MaxHeight + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeight(tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHeight(%d) error = %v, wantErr %v", tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateHeight(%d) code = %v, want %v", tt.height, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	if err := ValidateBudget("prime", -1); err != nil {
		t.Errorf("unlimited budget rejected: %v", err)
	}
	if err := ValidateBudget("prime", 3); err != nil {
		t.Errorf("small budget rejected: %v", err)
	}
	if err := ValidateBudget("composite", MaxHeight+1); err == nil {
		t.Error("oversized budget accepted")
	}
}

func TestValidateDiagonal(t *testing.T) {
	tests := []struct {
		d       int
		wantErr bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{5, false},
		{MaxHeight, true},
	}

	for _, tt := range tests {
		err := ValidateDiagonal(tt.d)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDiagonal(%d) error = %v, wantErr %v", tt.d, err, tt.wantErr)
		}
	}
}

func TestValidatePolicy(t *testing.T) {
	accepted := []string{"exhaustive", "prime-power"}

	if err := ValidatePolicy("exhaustive", accepted); err != nil {
		t.Errorf("ValidatePolicy(exhaustive) = %v", err)
	}

	err := ValidatePolicy("greedy", accepted)
	if err == nil {
		t.Fatal("ValidatePolicy(greedy) should fail")
	}
	if !Is(err, ErrCodeInvalidPolicy) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidPolicy)
	}
}

func TestValidateFormat(t *testing.T) {
	accepted := []string{"dot", "svg"}
	if err := ValidateFormat("svg", accepted); err != nil {
		t.Errorf("ValidateFormat(svg) = %v", err)
	}
	if err := ValidateFormat("png", accepted); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ValidateFormat(png) = %v, want INVALID_INPUT", err)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "tree.txt", false},
		{"absolute", "/tmp/tree.txt", false},
		{"empty", "", true},
		{"null byte", "tree\x00.txt", true},
		{"newline", "tree\n.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePath(tt.path); (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
