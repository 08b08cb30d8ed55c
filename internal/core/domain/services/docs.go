// Package services provides domain services that compute over several loads at
// once, where the logic does not belong to a single Load aggregate.
//
// The package includes:
//   - EarningsProjector: derives a trucker's earnings, completed trips and active job
//   - PosterSummarizer: derives a business's totals over the loads it posted
//
// Both are pure functions of the loads they are given; they never read a store.
package services
