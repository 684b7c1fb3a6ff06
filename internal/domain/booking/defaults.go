package booking

// First-defined resolution for the denormalized display fields: tutor
// profile value, then whatever the creating client already wrote on the
// booking, then a safe zero.

func ResolveTutorName(profileName, existing string) string {
	if profileName != "" {
		return profileName
	}
	return existing
}

func ResolveHourlyRate(profileRate, existing *float64) float64 {
	if profileRate != nil {
		return *profileRate
	}
	if existing != nil {
		return *existing
	}
	return 0
}
