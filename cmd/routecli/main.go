// Command routecli is a terminal client for the route planning API.
// It drives the full courier flow: log in, build an address list,
// optimize, then tick off stops while driving.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bagusgo_backend/internal/routeclient"
	"bagusgo_backend/internal/stops"
	"bagusgo_backend/internal/trip"
	"bagusgo_backend/platform/logger"
)

func main() {
	baseURL := os.Getenv("ROUTE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3001"
	}

	log := logger.New(os.Getenv("APP_ENV"))

	client := routeclient.New(baseURL)
	client.OnAuthExpired = func() {
		fmt.Println("session expired, please log in again")
	}

	session := &session{
		client:  client,
		trip:    trip.NewStore(),
		tracker: stops.NewTracker(),
		pins:    newPinResolver(client),
		log:     log,
	}

	fmt.Printf("connected to %s. type 'help' for commands.\n", baseURL)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		session.dispatch(line)
	}
}

type session struct {
	client  *routeclient.Client
	trip    *trip.Store
	tracker *stops.Tracker
	pins    *pinResolver
	log     *logger.Logger

	origin routeclient.Origin
}

func (s *session) dispatch(line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "help":
		printHelp()
	case "login":
		s.authenticate(ctx, rest, s.client.Login)
	case "register":
		s.authenticate(ctx, rest, s.client.Register)
	case "origin":
		s.setOrigin(rest)
	case "add":
		s.addAddress(ctx, rest)
	case "list":
		s.listTrip()
	case "del":
		s.deleteAddress(rest)
	case "optimize":
		s.optimize(ctx)
	case "route":
		s.printRoute()
	case "done":
		s.mark(rest, s.tracker.MarkDone)
	case "undo":
		s.mark(rest, s.tracker.MarkUndone)
	case "nav":
		s.navigate(rest)
	case "pin":
		s.dropPin(rest)
	case "saved":
		s.listSaved(ctx, rest)
	case "save":
		s.saveAddress(ctx, rest)
	default:
		fmt.Printf("unknown command %q, type 'help'\n", cmd)
	}
}

func printHelp() {
	fmt.Println(`commands:
  login <phone> <password>     log in
  register <phone> <password>  create an account
  origin <lat> <lng>           set the route start position
  add <address>                add an address to the trip
  list                         show the trip list
  del <n>                      remove trip address n
  optimize                     plan the route
  route                        show the planned route with progress
  done <n> / undo <n>          mark stop n delivered / pending
  nav <n>                      print a navigation link for stop n
  pin <lat> <lng>              resolve a dropped map pin to an address
  saved [page]                 list saved addresses
  save <label> | <address>     bookmark an address
  quit`)
}

func (s *session) authenticate(ctx context.Context, rest string, fn func(context.Context, string, string) (*routeclient.User, error)) {
	phone, password, ok := strings.Cut(rest, " ")
	if !ok {
		fmt.Println("usage: login <phone> <password>")
		return
	}

	user, err := fn(ctx, phone, strings.TrimSpace(password))
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Printf("logged in as %s\n", user.PhoneNumber)
}

func (s *session) setOrigin(rest string) {
	parts := strings.Fields(rest)
	if len(parts) != 2 {
		fmt.Println("usage: origin <lat> <lng>")
		return
	}
	lat, latErr := strconv.ParseFloat(parts[0], 64)
	lng, lngErr := strconv.ParseFloat(parts[1], 64)
	if latErr != nil || lngErr != nil {
		fmt.Println("lat and lng must be numbers")
		return
	}
	s.origin = routeclient.Origin{Lat: lat, Lng: lng}
	fmt.Printf("origin set to %.6f,%.6f\n", lat, lng)
}

func (s *session) addAddress(ctx context.Context, text string) {
	// Normalize through the lenient scan path; a provider outage still
	// lets the courier add the raw text.
	normalized := text
	if result, err := s.client.Geocode(ctx, text, "scan"); err == nil && result.FormattedAddress != "" {
		normalized = result.FormattedAddress
	}

	addr, ok := s.trip.Add(normalized)
	if !ok {
		fmt.Println("address text cannot be empty")
		return
	}
	fmt.Printf("added %d: %s\n", s.trip.Len(), addr.Text)
}

func (s *session) listTrip() {
	items := s.trip.List()
	if len(items) == 0 {
		fmt.Println("trip list is empty")
		return
	}
	for i, a := range items {
		fmt.Printf("%2d. %s\n", i+1, a.Text)
	}
}

func (s *session) deleteAddress(rest string) {
	idx, ok := s.parseIndex(rest, s.trip.Len())
	if !ok {
		return
	}
	items := s.trip.List()
	if s.trip.Delete(items[idx].ID) {
		fmt.Printf("removed %s\n", items[idx].Text)
	}
}

func (s *session) optimize(ctx context.Context) {
	texts := s.trip.Texts()
	if len(texts) == 0 {
		fmt.Println("add at least one address first")
		return
	}

	result, err := s.client.OptimizeRoute(ctx, s.origin, texts)
	if err != nil {
		s.reportError(err)
		return
	}

	// A fresh route always starts with every stop pending.
	s.tracker.Replace(result)
	s.printRoute()
}

func (s *session) printRoute() {
	route := s.tracker.Stops()
	if len(route) == 0 {
		fmt.Println("no route planned yet")
		return
	}
	for i, stop := range route {
		mark := " "
		if s.tracker.IsDone(i) {
			mark = "x"
		}
		fmt.Printf("[%s] %2d. %-50s %5.1f km  %s\n", mark, i+1, stop.Address, stop.DistanceKm, stop.Duration)
	}
	fmt.Printf("%d of %d delivered\n", s.tracker.DoneCount(), len(route))
}

func (s *session) mark(rest string, fn func(int)) {
	idx, ok := s.parseIndex(rest, len(s.tracker.Stops()))
	if !ok {
		return
	}
	fn(idx)
	s.printRoute()
}

func (s *session) navigate(rest string) {
	route := s.tracker.Stops()
	idx, ok := s.parseIndex(rest, len(route))
	if !ok {
		return
	}
	fmt.Println(stops.NavigationURL(route[idx].Address))
}

func (s *session) dropPin(rest string) {
	parts := strings.Fields(rest)
	if len(parts) != 2 {
		fmt.Println("usage: pin <lat> <lng>")
		return
	}
	lat, latErr := strconv.ParseFloat(parts[0], 64)
	lng, lngErr := strconv.ParseFloat(parts[1], 64)
	if latErr != nil || lngErr != nil {
		fmt.Println("lat and lng must be numbers")
		return
	}

	s.pins.Resolve(lat, lng, func(address string, err error) {
		if err != nil {
			s.reportError(err)
			return
		}
		fmt.Printf("\npin resolved: %s\n> ", address)
	})
}

func (s *session) listSaved(ctx context.Context, rest string) {
	page := 1
	if rest != "" {
		if n, err := strconv.Atoi(rest); err == nil {
			page = n
		}
	}

	result, err := s.client.ListAddresses(ctx, page, 20)
	if err != nil {
		s.reportError(err)
		return
	}

	for _, a := range result.Items {
		fmt.Printf("  [%s] %s\n", a.Label, a.Address)
	}
	fmt.Printf("page %d of %d addresses", result.Page, result.Total)
	if result.HasMore {
		fmt.Printf(" (more available)")
	}
	fmt.Println()
}

func (s *session) saveAddress(ctx context.Context, rest string) {
	label, address, ok := strings.Cut(rest, "|")
	if !ok {
		fmt.Println("usage: save <label> | <address>")
		return
	}

	saved, err := s.client.SaveAddress(ctx, strings.TrimSpace(label), strings.TrimSpace(address), nil, nil)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Printf("saved [%s] %s\n", saved.Label, saved.Address)
}

func (s *session) parseIndex(rest string, length int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 1 || n > length {
		fmt.Printf("expected a number between 1 and %d\n", length)
		return 0, false
	}
	return n - 1, true
}

func (s *session) reportError(err error) {
	switch {
	case errors.Is(err, routeclient.ErrSubscriptionExpired):
		fmt.Println("your subscription has expired; renew to keep optimizing routes")
	case errors.Is(err, routeclient.ErrUnauthorized):
		fmt.Println("not logged in")
	case errors.Is(err, routeclient.ErrNetwork):
		fmt.Println("cannot reach the server, check your connection")
	default:
		s.log.Debug("command failed", "error", err)
		fmt.Printf("error: %v\n", err)
	}
}
