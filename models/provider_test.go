package models

import "testing"

func TestRangeBased(t *testing.T) {
	cases := []struct {
		serviceType ServiceType
		want        bool
	}{
		{ServiceDaycare, true},
		{ServiceVet, false},
		{ServiceGrooming, false},
		{ServiceTraining, false},
		{ServiceSpa, false},
	}
	for _, tc := range cases {
		p := ServiceProvider{Type: tc.serviceType}
		if got := p.RangeBased(); got != tc.want {
			t.Errorf("RangeBased() for %q = %v, want %v", tc.serviceType, got, tc.want)
		}
	}
}
