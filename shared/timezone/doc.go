// Package timezone pins every calendar computation of the front desk to one
// configured location.
//
// Arrivals, departures and the trailing revenue series all compare calendar
// dates, so they must agree on where a day starts:
//
//	today := timezone.Today()
//	if timezone.SameDate(booking.CheckIn, today) { ... }
//
//	start, err := timezone.ParseDate("2024-03-01")
//	label := timezone.FormatDate(txn.Timestamp)
//
// The location is read from APP_TIMEZONE (IANA names such as "UTC" or
// "Europe/London") when the package is imported. Unknown names fall back to UTC.
package timezone
