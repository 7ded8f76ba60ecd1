package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/socialnet/builder"
	"github.com/katalvlaran/socialnet/network"
)

type command struct {
	usage   string
	help    string
	minArgs int
	run     func(ctx context.Context, line string, args []string) error
}

var errNewsDisabled = errors.New("news is not configured")

// helpOrder fixes the order of the help listing.
var helpOrder = []string{
	"user", "friend", "post", "path", "closeness", "rank", "cycle",
	"friends", "mutual", "reach", "posts", "feed", "view", "show", "seed", "stats", "news", "help",
}

func (s *Shell) commandTable() map[string]command {
	return map[string]command{
		"user":      {"user <name>", "Add a new user.", 1, s.cmdUser},
		"friend":    {"friend <A> <B>", "Add a mutual friendship.", 2, s.cmdFriend},
		"post":      {"post <name> <message>", "Create a new post.", 2, s.cmdPost},
		"path":      {"path <A> <B>", "Find the shortest friendship path (BFS).", 2, s.cmdPath},
		"closeness": {"closeness <user>", "Rank users by weighted closeness (Dijkstra).", 1, s.cmdCloseness},
		"rank":      {"rank followers | rank active [n]", "Rank users by friends or posts (heap sort).", 1, s.cmdRank},
		"cycle":     {"cycle", "Check the friendship graph for a cycle.", 0, s.cmdCycle},
		"friends":   {"friends <name>", "List a user's friends.", 1, s.cmdFriends},
		"mutual":    {"mutual <A> <B>", "List friends shared by two users.", 2, s.cmdMutual},
		"reach":     {"reach <user> <hops>", "List users within a number of hops (BFS).", 2, s.cmdReach},
		"posts":     {"posts <name>", "List a user's posts, newest first.", 1, s.cmdPosts},
		"feed":      {"feed <name> [n]", "Show posts of a user and their friends.", 1, s.cmdFeed},
		"view":      {"view <post-id>", "Show one post by ID or ID prefix.", 1, s.cmdView},
		"show":      {"show <name>", "Show a user's profile.", 1, s.cmdShow},
		"seed":      {"seed <topology> <n> [p|k]", "Add a generated network: path, cycle, star, complete, wheel, random, posts.", 2, s.cmdSeed},
		"stats":     {"stats", "Print network counters.", 0, s.cmdStats},
		"news":      {"news <topic>", "Fetch news and post it to the network.", 1, s.cmdNews},
		"help":      {"help", "Show this help.", 0, s.cmdHelp},
	}
}

func (s *Shell) cmdHelp(context.Context, string, []string) error {
	fmt.Fprintln(s.out, "Commands:")
	for _, name := range helpOrder {
		c := s.commands[name]
		fmt.Fprintf(s.out, "  %-34s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(s.out, "  %-34s %s\n", "quit | exit", "Exit the simulator.")

	return nil
}

func (s *Shell) cmdUser(_ context.Context, _ string, args []string) error {
	u, err := s.net.AddUser(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "User %s: %d friends, %d posts\n", u.ID, u.FriendCount(), u.PostCount)

	return nil
}

func (s *Shell) cmdFriend(_ context.Context, _ string, args []string) error {
	if err := s.net.AddFriendship(args[0], args[1]); err != nil {
		return err
	}
	if args[0] == args[1] {
		fmt.Fprintf(s.out, "%s is now their own friend\n", args[0])
		return nil
	}
	fmt.Fprintf(s.out, "%s and %s are now friends\n", args[0], args[1])

	return nil
}

func (s *Shell) cmdPost(_ context.Context, line string, args []string) error {
	p, err := s.net.AddPost(args[0], rest(line, 2))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Posted #%d as %s (%s)\n", p.Seq, p.Author, p.ShortID())

	return nil
}

func (s *Shell) cmdPath(_ context.Context, _ string, args []string) error {
	path := s.net.ShortestPath(args[0], args[1])
	if len(path) == 0 {
		fmt.Fprintln(s.out, "No path")
		return nil
	}
	fmt.Fprintf(s.out, "%s (%d hops)\n", strings.Join(path, " -> "), len(path)-1)

	return nil
}

func (s *Shell) cmdCloseness(_ context.Context, _ string, args []string) error {
	start := args[0]
	if _, ok := s.net.User(start); !ok {
		return fmt.Errorf("user %q not found", start)
	}

	dist := s.net.ClosenessRankings(start)
	fmt.Fprintf(s.out, "--- Weighted Closeness from %s (lower is closer) ---\n", start)
	if len(dist) == 0 {
		fmt.Fprintln(s.out, "No connections found to other users.")
		return nil
	}

	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if dist[a] != dist[b] {
			if dist[a] < dist[b] {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	for _, id := range ids {
		fmt.Fprintf(s.out, "  %s: %d\n", id, dist[id])
	}

	return nil
}

func (s *Shell) cmdRank(_ context.Context, _ string, args []string) error {
	switch strings.ToLower(args[0]) {
	case "followers":
		fmt.Fprintln(s.out, "--- Top Influencers (ranked by friends) ---")
		for i, u := range s.net.UsersRankedByFollowers() {
			fmt.Fprintf(s.out, "%2d. %s -> %s\n", i+1, u.ID, plural(u.FriendCount(), "friend"))
		}
	case "active":
		limit := s.activityLimit
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number for limit: %q", args[1])
			}
			limit = n
		}
		if limit > 0 {
			fmt.Fprintf(s.out, "--- Most Active Users (top %d) ---\n", limit)
		} else {
			fmt.Fprintln(s.out, "--- Most Active Users ---")
		}
		for i, u := range s.net.UsersRankedByActivity(limit) {
			fmt.Fprintf(s.out, "%2d. %s -> %s\n", i+1, u.ID, plural(u.PostCount, "post"))
		}
	default:
		return fmt.Errorf("unknown rank type %q, use 'followers' or 'active'", args[0])
	}

	return nil
}

func (s *Shell) cmdCycle(context.Context, string, []string) error {
	from, to, ok := s.net.FindCycle()
	if !ok {
		fmt.Fprintln(s.out, "No friendship cycle")
		return nil
	}
	fmt.Fprintf(s.out, "Friendship cycle found, closed by %s - %s\n", from, to)

	return nil
}

func (s *Shell) cmdFriends(_ context.Context, _ string, args []string) error {
	u, ok := s.net.User(args[0])
	if !ok {
		return fmt.Errorf("user %q not found", args[0])
	}
	s.printList(fmt.Sprintf("Friends of %s", u.ID), u.Friends)

	return nil
}

func (s *Shell) cmdMutual(_ context.Context, _ string, args []string) error {
	s.printList(fmt.Sprintf("Mutual friends of %s and %s", args[0], args[1]), s.net.MutualFriends(args[0], args[1]))

	return nil
}

func (s *Shell) cmdReach(ctx context.Context, _ string, args []string) error {
	hops, err := strconv.Atoi(args[1])
	if err != nil || hops < 1 {
		return fmt.Errorf("invalid number of hops: %q", args[1])
	}
	found, err := s.net.FriendsWithin(ctx, args[0], hops)
	if errors.Is(err, network.ErrUserNotFound) {
		return fmt.Errorf("user %q not found", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "--- Within %s of %s ---\n", plural(hops, "hop"), args[0])
	if len(found) == 0 {
		fmt.Fprintln(s.out, "Nobody")
		return nil
	}
	for i := 0; i < len(found); {
		j := i
		var ids []string
		for ; j < len(found) && found[j].Hops == found[i].Hops; j++ {
			ids = append(ids, found[j].ID)
		}
		fmt.Fprintf(s.out, "  %d: %s\n", found[i].Hops, strings.Join(ids, ", "))
		i = j
	}

	return nil
}

func (s *Shell) cmdView(_ context.Context, _ string, args []string) error {
	p, err := s.net.Post(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Post %s (#%d)\n%s, %s: %s\n", p.ID, p.Seq, p.Author, s.age(p), p.Content)

	return nil
}

func (s *Shell) cmdPosts(_ context.Context, _ string, args []string) error {
	if _, ok := s.net.User(args[0]); !ok {
		return fmt.Errorf("user %q not found", args[0])
	}
	s.printPosts(s.net.Posts(args[0]))

	return nil
}

func (s *Shell) cmdFeed(_ context.Context, _ string, args []string) error {
	if _, ok := s.net.User(args[0]); !ok {
		return fmt.Errorf("user %q not found", args[0])
	}
	limit := s.feedLimit
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid number for limit: %q", args[1])
		}
		limit = n
	}
	s.printPosts(s.net.Feed(args[0], limit))

	return nil
}

func (s *Shell) cmdShow(_ context.Context, _ string, args []string) error {
	u, ok := s.net.User(args[0])
	if !ok {
		return fmt.Errorf("user %q not found", args[0])
	}
	fmt.Fprintf(s.out, "%s: %s, %s\n", u.ID, plural(u.FriendCount(), "friend"), plural(u.PostCount, "post"))
	if posts := s.net.Posts(u.ID); len(posts) > 0 {
		fmt.Fprintf(s.out, "Latest: %q (%s)\n", posts[0].Content, s.age(posts[0]))
	}

	return nil
}

func (s *Shell) cmdSeed(_ context.Context, _ string, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid size: %q", args[1])
	}

	var (
		con   builder.Constructor
		posts int
	)
	switch strings.ToLower(args[0]) {
	case "path":
		con = builder.Path(n)
	case "cycle":
		con = builder.Cycle(n)
	case "star":
		con = builder.Star(n)
	case "complete":
		con = builder.Complete(n)
	case "wheel":
		con = builder.Wheel(n)
	case "random":
		p := 0.1
		if len(args) > 2 {
			if p, err = strconv.ParseFloat(args[2], 64); err != nil {
				return fmt.Errorf("invalid probability: %q", args[2])
			}
		}
		con = builder.RandomSparse(n, p)
	case "posts":
		k := 1
		if len(args) > 2 {
			if k, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid posts per user: %q", args[2])
			}
		}
		con = builder.Posts(n, k)
		posts = n * k
	default:
		return fmt.Errorf("unknown topology %q", args[0])
	}

	before := s.net.UserCount()
	opts := []builder.Option{
		builder.WithIDScheme(builder.PrefixIDFn(s.seedPrefix)),
		builder.WithSeed(s.now().UnixNano()),
	}
	if err := builder.Build(s.net, opts, con); err != nil {
		return err
	}
	summary := plural(s.net.UserCount()-before, "new user")
	if posts > 0 {
		summary += ", " + plural(posts, "post")
	}
	fmt.Fprintf(s.out, "Seeded %s %s: %s\n", args[0], humanize.Comma(int64(n)), summary)

	return nil
}

func (s *Shell) cmdStats(context.Context, string, []string) error {
	if s.metrics == nil {
		fmt.Fprintf(s.out, "users: %s\n", humanize.Comma(int64(s.net.UserCount())))
		return nil
	}

	samples, err := s.metrics.Snapshot()
	if err != nil {
		return err
	}
	for _, sm := range samples {
		name := sm.Name
		if sm.Label != "" {
			name += "{" + sm.Label + "}"
		}
		fmt.Fprintf(s.out, "%s: %s\n", name, humanize.Comma(int64(sm.Value)))
	}

	return nil
}

func (s *Shell) cmdNews(ctx context.Context, line string, _ []string) error {
	if s.news == nil {
		return errNewsDisabled
	}

	topic := rest(line, 1)
	fmt.Fprintf(s.out, "Fetching news about '%s'...\n", topic)
	posts, err := s.news.Ingest(ctx, topic)
	if err != nil {
		return fmt.Errorf("news fetch failed: %w", err)
	}
	if len(posts) == 0 {
		fmt.Fprintf(s.out, "No news found for topic: '%s'\n", topic)
		return nil
	}

	fmt.Fprintf(s.out, "--- Latest News: %s ---\n", topic)
	for i, p := range posts {
		fmt.Fprintf(s.out, "%d. [%s] %s\n", i+1, p.Author, p.Content)
	}
	fmt.Fprintf(s.out, "Posted %s\n", plural(len(posts), "news article"))

	return nil
}

func (s *Shell) printList(title string, ids []string) {
	if len(ids) == 0 {
		fmt.Fprintf(s.out, "%s: none\n", title)
		return
	}
	fmt.Fprintf(s.out, "%s: %s\n", title, strings.Join(ids, ", "))
}

func (s *Shell) printPosts(posts []network.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(s.out, "No posts")
		return
	}
	for _, p := range posts {
		fmt.Fprintf(s.out, "%s [%s] %s: %s\n", p.ShortID(), s.age(p), p.Author, p.Content)
	}
}

func (s *Shell) age(p network.Post) string {
	return humanize.RelTime(p.CreatedAt, s.now(), "ago", "from now")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return humanize.Comma(int64(n)) + " " + word + "s"
}
