// Package validator lints catalog files before they are served.
//
// Problems are collected into a [Result] as [Issue] values rather than
// returned on first failure, so one run reports everything wrong with a
// file. Errors block loading; warnings flag records that load but render
// poorly (no tools, unknown category, missing links).
//
//	result := validator.CheckIntegrations(records)
//	if err := validator.NewReporter(os.Stdout, validator.FormatText).Report(result); err != nil {
//		return err
//	}
package validator
