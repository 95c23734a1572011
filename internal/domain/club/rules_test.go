package club

import "testing"

func validInfo() Info {
	return Info{
		ClubID:       1,
		Website:      "https://yorktt.example.org",
		ContactName:  "Jane Smith",
		ContactEmail: "jane@example.org",
		ContactPhone: "0121 234 5678",
		Description:  "Friendly club in the city centre.",
		SessionInfo:  "Mondays and Thursdays 7pm.",
	}
}

func TestInfoNormalize(t *testing.T) {
	got := validInfo().Normalize()
	if got.Image != DefaultImage {
		t.Fatalf("expected default image, got %q", got.Image)
	}
	if got.ContactPhone != "+441212345678" {
		t.Fatalf("expected E.164 phone, got %q", got.ContactPhone)
	}
}

func TestInfoValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(i *Info)
		wantField string
	}{
		{name: "valid", mutate: func(_ *Info) {}},
		{name: "bad email", mutate: func(i *Info) { i.ContactEmail = "not-an-email" }, wantField: "contact_email"},
		{name: "bad phone", mutate: func(i *Info) { i.ContactPhone = "12" }, wantField: "contact_phone"},
		{name: "bad website", mutate: func(i *Info) { i.Website = "yorktt" }, wantField: "website"},
		{name: "missing contact", mutate: func(i *Info) { i.ContactName = " " }, wantField: "contact_name"},
		{
			name: "description too long",
			mutate: func(i *Info) {
				b := make([]byte, 501)
				for n := range b {
					b[n] = 'a'
				}
				i.Description = string(b)
			},
			wantField: "description",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := validInfo()
			tc.mutate(&info)

			errs := info.Normalize().Validate()
			if tc.wantField == "" {
				if !errs.Empty() {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if !errs.Has(tc.wantField) {
				t.Fatalf("expected error on %s, got %v", tc.wantField, errs)
			}
		})
	}
}

func TestReviewValidate(t *testing.T) {
	r := Review{ClubID: 1, UserID: "u1", Score: 6, Headline: "", ReviewText: "ok"}
	errs := r.Validate()
	if !errs.Has("score") || !errs.Has("headline") {
		t.Fatalf("expected score and headline errors, got %v", errs)
	}
}
