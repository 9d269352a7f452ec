// Package optimizer turns single searches into the two answers of a scenario.
//
// SingleActor runs one unrestricted search. TwoActor enumerates every split of
// the positive-rate valves into two disjoint territories (Partitions), runs one
// restricted search per territory from the shared start valve, and keeps the
// largest sum. Splits are independent, so they are evaluated on a bounded
// worker pool and reduced with a maximum.
//
// The searcher is injected through the Searcher interface; in production it is
// a *search.Engine, in tests a gomock mock from the mocks subpackage.
package optimizer
