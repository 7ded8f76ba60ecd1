package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodWheel        = "Wheel"
	methodRandomSparse = "RandomSparse"
	methodPosts        = "Posts"

	minPathNodes   = 1
	minCycleNodes  = 3
	minStarNodes   = 2
	minWheelNodes  = 4
	minRandomNodes = 1
)

func tooFew(method, param string, got, least int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, least, ErrTooFewVertices)
}

// Path links users 0..n-1 in a chain: 0-1, 1-2, ..., (n-2)-(n-1).
func Path(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		if err := addUsers(t, cfg, methodPath, 0, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := befriend(t, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle links users 0..n-1 in a ring, closing with (n-1)-0.
func Cycle(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		if err := addUsers(t, cfg, methodCycle, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := befriend(t, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star makes user 0 the hub and befriends it with users 1..n-1.
func Star(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := addUsers(t, cfg, methodStar, 0, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := befriend(t, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete befriends every pair i<j among users 0..n-1.
func Complete(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minPathNodes {
			return tooFew(methodComplete, "n", n, minPathNodes)
		}
		if err := addUsers(t, cfg, methodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := befriend(t, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Wheel makes user 0 the hub of a ring over users 1..n-1.
func Wheel(n int) Constructor {
	return func(t Target, cfg config) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := addUsers(t, cfg, methodWheel, 0, n); err != nil {
			return err
		}
		rim := n - 1
		for k := 0; k < rim; k++ {
			if err := befriend(t, cfg, methodWheel, 1+k, 1+(k+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := befriend(t, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomSparse befriends each pair i<j independently with probability p.
// Pairs are tried in ascending (i, j) order, so a fixed seed yields a fixed
// network. p of exactly 0 or 1 needs no RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(t Target, cfg config) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addUsers(t, cfg, methodRandomSparse, 0, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := befriend(t, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Posts writes perUser posts for each of users 0..n-1, round-robin, so post
// sequence numbers interleave across users.
func Posts(n, perUser int) Constructor {
	return func(t Target, cfg config) error {
		if n < minPathNodes {
			return tooFew(methodPosts, "n", n, minPathNodes)
		}
		if perUser < 0 {
			return tooFew(methodPosts, "perUser", perUser, 0)
		}
		for k := 1; k <= perUser; k++ {
			for i := 0; i < n; i++ {
				id := cfg.idFn(i)
				if _, err := t.AddPost(id, fmt.Sprintf("post %d by %s", k, id)); err != nil {
					return fmt.Errorf("%s: AddPost(%s): %w", methodPosts, id, err)
				}
			}
		}

		return nil
	}
}
