package password

import (
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "admin123",
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			wantErr:  false,
		},
		{
			name:     "long password",
			password: "verylongpasswordwithmorethanfiftycharacters",
			wantErr:  false,
		},
		{
			name:     "short password",
			password: "short",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := Hash(tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("Hash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("Hash() returned empty digest")
			}

			if !tt.wantErr {
				err = Compare(gotHash, tt.password)
				if err != nil {
					t.Errorf("Generated digest doesn't verify with original password: %v", err)
				}
			}
		})
	}
}

func TestCompare(t *testing.T) {
	correctHash, err := Hash("correct_password")
	if err != nil {
		t.Fatalf("Failed to create test digest: %v", err)
	}

	anotherHash, err := Hash("another_password")
	if err != nil {
		t.Fatalf("Failed to create test digest: %v", err)
	}

	tests := []struct {
		name        string
		digest      string
		password    string
		shouldMatch bool
	}{
		{
			name:        "matching password",
			digest:      correctHash,
			password:    "correct_password",
			shouldMatch: true,
		},
		{
			name:        "wrong password",
			digest:      correctHash,
			password:    "wrong_password",
			shouldMatch: false,
		},
		{
			name:        "different digest same password",
			digest:      anotherHash,
			password:    "correct_password",
			shouldMatch: false,
		},
		{
			name:        "empty password",
			digest:      correctHash,
			password:    "",
			shouldMatch: false,
		},
		{
			name:        "malformed digest",
			digest:      "not-a-bcrypt-digest",
			password:    "correct_password",
			shouldMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(tt.digest, tt.password)

			if tt.shouldMatch && err != nil {
				t.Errorf("Compare() should succeed, got error: %v", err)
			}

			if !tt.shouldMatch && err == nil {
				t.Error("Compare() should fail, but got no error")
			}
		})
	}
}

func TestHash_DifferentPasswordsProduceDifferentDigests(t *testing.T) {
	hash1, err := Hash("password1")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	hash2, err := Hash("password2")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	if hash1 == hash2 {
		t.Error("Different passwords produced identical digests")
	}
}
