// Package pallet holds the Pallet aggregate: stored stock of one product that
// order allocation draws from.
package pallet
