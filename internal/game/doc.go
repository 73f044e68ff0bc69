// Package game implements the rules of a single-deck Blackjack table.
//
// The main type is Table, which plays one betting round at a time for a
// player against the dealer, and Session, which drives the age check,
// seating and repeated rounds until every player is bankrupt.
//
// # Basic Usage
//
//	d := deck.New(randutil.New(seed))
//	d.Shuffle()
//	s := game.NewSession(d, prompter, renderer,
//		game.WithRules(game.DefaultRules()),
//		game.WithLogger(logger))
//	err := s.Run()
//
// Console interaction is abstracted behind Prompter and Renderer so the
// same rules can be driven by scripted input in tests.
//
// # Deterministic Testing
//
// Use deck.NewFromCards to fix the dealing order:
//
//	d := deck.NewFromCards(rng, deck.MustParseCards("AH KS 9C 7D"))
//	table := game.NewTable(d, prompter, renderer)
//	result, err := table.PlayRound(player)
package game
