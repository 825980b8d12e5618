package contracts

import "testing"

func TestGenerateKeyFromPath(t *testing.T) {
	cases := map[string]string{
		"events/listing-changed/v1.json":  "ListingChangedEvent/1.0.0",
		"requests/listing-input/v2.json":  "ListingInputRequest/2.0.0",
		"other/listing-input/v1.json":     "",
		"events/listing-changed.json":     "",
		"events/listing-changed/one.json": "",
	}
	for path, want := range cases {
		if got := generateKeyFromPath(path); got != want {
			t.Errorf("%s: expected %q got %q", path, want, got)
		}
	}
}

func TestValidateListingInput(t *testing.T) {
	cases := []struct {
		name string
		body string
		ok   bool
	}{
		{"minimal", `{"title":"Room","price":500,"location":"State College, PA 16801","available_from":"2024-06-01"}`, true},
		{"full", `{"title":"Room","description":"","price":0,"location":"x","bedrooms":2,"bathrooms":null,
			"image_urls":["https://img.example/a.jpg"],"available_from":"2024-06-01","available_until":null}`, true},
		{"missing title", `{"price":500,"location":"x","available_from":"2024-06-01"}`, false},
		{"negative price", `{"title":"Room","price":-1,"location":"x","available_from":"2024-06-01"}`, false},
		{"bad date", `{"title":"Room","price":1,"location":"x","available_from":"06/01/2024"}`, false},
		{"fractional bedrooms", `{"title":"Room","price":1,"location":"x","available_from":"2024-06-01","bedrooms":1.5}`, false},
		{"unknown field", `{"title":"Room","price":1,"location":"x","available_from":"2024-06-01","owner_id":"x"}`, false},
		{"too many images", `{"title":"Room","price":1,"location":"x","available_from":"2024-06-01",
			"image_urls":["a:1","a:2","a:3","a:4","a:5","a:6","a:7","a:8","a:9","a:10","a:11"]}`, false},
		{"price at column limit", `{"title":"Room","price":99999999.99,"location":"x","available_from":"2024-06-01"}`, true},
		{"price over column limit", `{"title":"Room","price":100000000,"location":"x","available_from":"2024-06-01"}`, false},
		{"bedrooms over int4", `{"title":"Room","price":1,"location":"x","available_from":"2024-06-01","bedrooms":2147483648}`, false},
		{"not json", `{`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateListingInput([]byte(tc.body))
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateListingChangedEvent(t *testing.T) {
	valid := `{"event_id":"5b0c3f0e-8f7e-4b8e-9d8a-3f1f6f0e8a11","change":"created",
		"listing_id":"0d9c4f5e-1a2b-4c3d-8e9f-101112131415","owner_id":"7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d",
		"occurred_at":"2024-04-01T10:00:00Z"}`
	if err := ValidateListingChangedEvent([]byte(valid)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := `{"event_id":"nope","change":"archived","listing_id":"x","owner_id":"y","occurred_at":"yesterday"}`
	if err := ValidateListingChangedEvent([]byte(invalid)); err == nil {
		t.Fatal("expected validation error")
	}

	if err := Validate("UnknownEvent", VersionV1, []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown contract")
	}
}
