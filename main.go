package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lettergrid/boggle/internal/board"
	"github.com/lettergrid/boggle/internal/daily"
	"github.com/lettergrid/boggle/internal/dict"
	"github.com/lettergrid/boggle/internal/game"
	"github.com/lettergrid/boggle/internal/solver"
	"github.com/lettergrid/boggle/internal/store"
	"github.com/lettergrid/boggle/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	wordList, err := words.List()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	d, err := dict.Build(wordList)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build dictionary")
	}
	log.Info().Int("words", d.Len()).Msg("dictionary ready")

	size := getEnvInt("BOARD_SIZE", 4)
	roundSecs := getEnvInt("ROUND_SECONDS", 180)

	sess := game.NewSession(d)
	results := store.NewMemoryStore()
	ctx := context.Background()

	if err := playRound(ctx, sess, d, results, size, roundSecs); err != nil {
		log.Fatal().Err(err).Msg("round failed")
	}
}

// playRound drives one full round: board setup, timed text entry from
// stdin, then the end-of-round summary with missed words.
func playRound(ctx context.Context, sess *game.Session, d *dict.Dictionary, results store.Store, size, roundSecs int) error {
	if err := sess.Begin(); err != nil {
		return err
	}

	var b *board.Board
	var err error
	if os.Getenv("DAILY") == "1" {
		seed := daily.BoardSeed(time.Now(), getEnv("DAILY_SALT", "boggle"))
		b, err = board.GenerateSeeded(size, seed)
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily board")
	} else {
		b, err = board.Generate(size)
	}
	if err != nil {
		return err
	}
	if err := sess.Start(b); err != nil {
		return err
	}
	log.Info().Str("session", sess.ID).Int("size", size).Msg("round started")

	// The board and dictionary are read-only once the round starts, so the
	// full answer set can be computed alongside play.
	allCh := make(chan []string, 1)
	go func() { allCh <- solver.FindAllWords(b, d) }()

	fmt.Println(b)
	fmt.Printf("Type words (%ds round, ctrl-d to stop early):\n", roundSecs)

	lines := make(chan string)
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	timeout := time.After(time.Duration(roundSecs) * time.Second)
play:
	for {
		select {
		case <-timeout:
			fmt.Println("Time!")
			break play
		case line, ok := <-lines:
			if !ok {
				break play
			}
			word, pts, reason := sess.SubmitWordText(line)
			if reason == game.OK {
				fmt.Printf("  %s +%d (total %d)\n", word, pts, sess.Score())
			} else {
				fmt.Printf("  %s rejected: %s\n", word, reason)
			}
		}
	}

	sess.End()
	all := <-allCh
	found := sess.Words()
	missed := lo.Without(all, found...)

	fmt.Printf("\nScore: %d with %d words: %v\n", sess.Score(), len(found), found)
	fmt.Printf("Missed %d of %d possible words (worth %d points): %v\n",
		len(missed), len(all), game.TotalScore(missed), missed)

	res := store.Result{
		ID:      sess.ID,
		Date:    daily.DateKey(time.Now()),
		Words:   found,
		Score:   sess.Score(),
		Missed:  len(missed),
		Seconds: roundSecs,
	}
	if err := results.Save(ctx, res); err != nil {
		return err
	}
	log.Info().Str("session", sess.ID).Int("score", res.Score).Int("missed", res.Missed).Msg("round recorded")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
	}
	return def
}
