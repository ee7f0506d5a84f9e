// Package captable computes a capitalization table from a ledger of share
// purchases.
//
// A ledger is a comma separated file with one purchase per line:
//
//	#INVESTMENT DATE,SHARES PURCHASED,CASH PAID,INVESTOR
//	2016-04-03,1000,10000.00,Sandy Lerner
//
// The first line is a header and is always ignored. Purchases made after the
// as-of date are excluded, the others are summed per investor (investor names
// are compared case insensitively) to report shares, cash paid and percentage
// ownership.
//
// The computation is exact: cash is held in integer cents and converted to a
// decimal amount only when the table is reported. Any malformed line aborts the
// whole computation; there is no partial table.
//
// This package serves as the foundational logic for the `captable` command-line
// tool.
package captable
