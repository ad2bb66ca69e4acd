// Package menusync keeps the stored menu in step with the price/stock spreadsheet
// maintained by the kitchen.
//
// A pass fetches every row of the sheet, matches rows to stored menu items by
// case-insensitive name, creates the items it cannot find and updates price and
// availability where they differ. Items missing from the sheet are never deleted.
//
// Passes are driven by a cron schedule, by a fixed-interval real-time loop, or by
// an operator through TriggerManualSync. All three share the same Syncer, and a
// failing pass never stops the driver that started it.
package menusync
