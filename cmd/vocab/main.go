package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"vocabtrainer/internal/config"
	"vocabtrainer/internal/database"
	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/service"
	"vocabtrainer/internal/srs"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	planRepo := repository.NewPlanRepository(db)

	reviewService := service.NewReviewService(progressRepo, wordRepo, sessionRepo, cfg.SessionWordLimit)
	planService := service.NewPlanService(planRepo, progressRepo, wordRepo, userRepo)

	switch os.Args[1] {
	case "migrate":
		// Migrations already ran above
		fmt.Println("Migrations up to date")

	case "users":
		handleUsers(userRepo, os.Args[2:])

	case "words":
		handleWords(wordRepo, os.Args[2:])

	case "due":
		handleDue(reviewService, os.Args[2:])

	case "plan":
		handlePlan(planService, wordRepo, os.Args[2:])

	case "study":
		handleStudy(reviewService, os.Args[2:])

	case "remind":
		handleRemind(cfg, userRepo, progressRepo, os.Args[2:])

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: vocab <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate              Run database migrations")
	fmt.Println("  users add|list       Manage learner accounts")
	fmt.Println("  words add|list       Manage the word catalog")
	fmt.Println("  due -user <id>       Show words due for review")
	fmt.Println("  plan -user <id>      Build or show today's study plan")
	fmt.Println("  study -user <id>     Run an interactive study session")
	fmt.Println("  remind               Send due-word reminder emails now")
}

func handleUsers(userRepo *repository.UserRepository, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: vocab users add|list")
		os.Exit(1)
	}

	switch args[0] {
	case "add":
		addCmd := flag.NewFlagSet("users add", flag.ExitOnError)
		name := addCmd.String("name", "", "Learner name (required)")
		email := addCmd.String("email", "", "Learner email (required)")
		newWords := addCmd.Int("new-words", 10, "New words per day")
		hour := addCmd.Int("hour", 9, "Reminder hour (0-23)")
		addCmd.Parse(args[1:])

		if *name == "" || *email == "" {
			fmt.Println("Error: -name and -email are required")
			addCmd.PrintDefaults()
			os.Exit(1)
		}

		user, err := userRepo.CreateUser(*name, *email, *newWords, *hour)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)

	case "list":
		users, err := userRepo.GetAllUsers()
		if err != nil {
			log.Fatalf("Failed to list users: %v", err)
		}
		for _, user := range users {
			fmt.Printf("%4d  %-20s %-30s %d new words/day, reminder at %02d:00\n",
				user.ID, user.Name, user.Email, user.NewWordsPerDay, user.ReminderHour)
		}

	default:
		fmt.Println("Usage: vocab users add|list")
		os.Exit(1)
	}
}

func handleWords(wordRepo *repository.WordRepository, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: vocab words add|list")
		os.Exit(1)
	}

	switch args[0] {
	case "add":
		addCmd := flag.NewFlagSet("words add", flag.ExitOnError)
		text := addCmd.String("text", "", "Word text (required)")
		translation := addCmd.String("translation", "", "Translation (required)")
		example := addCmd.String("example", "", "Example sentence")
		topic := addCmd.String("topic", "", "Topic label")
		difficulty := addCmd.Int("difficulty", 1, "Difficulty level (1-5)")
		addCmd.Parse(args[1:])

		if *text == "" || *translation == "" {
			fmt.Println("Error: -text and -translation are required")
			addCmd.PrintDefaults()
			os.Exit(1)
		}

		word, err := wordRepo.CreateWord(*text, *translation, *example, *topic, *difficulty)
		if err != nil {
			log.Fatalf("Failed to create word: %v", err)
		}
		fmt.Printf("Created word %d (%s)\n", word.ID, word.WordText)

	case "list":
		listCmd := flag.NewFlagSet("words list", flag.ExitOnError)
		topic := listCmd.String("topic", "", "Filter by topic")
		listCmd.Parse(args[1:])

		words, err := wordRepo.GetAllWords(*topic)
		if err != nil {
			log.Fatalf("Failed to list words: %v", err)
		}
		for _, word := range words {
			fmt.Printf("%4d  %-25s %-25s [%s] difficulty %d\n",
				word.ID, word.WordText, word.Translation, word.Topic, word.DifficultyLevel)
		}

	default:
		fmt.Println("Usage: vocab words add|list")
		os.Exit(1)
	}
}

func handleDue(reviewService *service.ReviewService, args []string) {
	dueCmd := flag.NewFlagSet("due", flag.ExitOnError)
	userID := dueCmd.Int64("user", 0, "User ID (required)")
	dueCmd.Parse(args)

	if *userID == 0 {
		fmt.Println("Error: -user flag is required")
		os.Exit(1)
	}

	queue, err := reviewService.BuildQueue(*userID)
	if err != nil {
		log.Fatalf("Failed to build review queue: %v", err)
	}
	if len(queue) == 0 {
		fmt.Println("Nothing due. Come back tomorrow.")
		return
	}

	now := time.Now()
	for _, item := range queue {
		priority := srs.ReviewPriority(item.Schedule, srs.MasteryLevel(item.Schedule), now)
		status := "new"
		if item.Schedule != nil {
			status = fmt.Sprintf("rep %d, due %s", item.Schedule.Repetitions,
				item.Schedule.NextReviewDate.Format("2006-01-02"))
		}
		fmt.Printf("%6.1f  %-25s (%s)\n", priority, item.Word.WordText, status)
	}
}

func handlePlan(planService *service.PlanService, wordRepo *repository.WordRepository, args []string) {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	userID := planCmd.Int64("user", 0, "User ID (required)")
	planCmd.Parse(args)

	if *userID == 0 {
		fmt.Println("Error: -user flag is required")
		os.Exit(1)
	}

	plan, err := planService.BuildDailyPlan(*userID, time.Now())
	if err != nil {
		log.Fatalf("Failed to build study plan: %v", err)
	}

	fmt.Printf("Study plan for %s (%d words):\n", plan.Plan.PlanDate.Format("2006-01-02"), len(plan.Entries))
	for _, entry := range plan.Entries {
		word, err := wordRepo.GetWordByID(entry.WordID)
		if err != nil || word == nil {
			continue
		}
		marker := "review"
		if entry.IsNew {
			marker = "new"
		}
		fmt.Printf("  %-25s %s\n", word.WordText, marker)
	}
}

func handleStudy(reviewService *service.ReviewService, args []string) {
	studyCmd := flag.NewFlagSet("study", flag.ExitOnError)
	userID := studyCmd.Int64("user", 0, "User ID (required)")
	studyCmd.Parse(args)

	if *userID == 0 {
		fmt.Println("Error: -user flag is required")
		os.Exit(1)
	}

	session, queue, err := reviewService.StartSession(*userID)
	if err != nil {
		if errors.Is(err, service.ErrNothingToStudy) {
			fmt.Println("Nothing due. Come back tomorrow.")
			return
		}
		log.Fatalf("Failed to start session: %v", err)
	}

	fmt.Printf("Session %s: %d words. Answer with (f)orgot, (u)nfamiliar or (k)new, or q to stop.\n\n",
		session.PublicID, len(queue))

	scanner := bufio.NewScanner(os.Stdin)
	for _, item := range queue {
		started := time.Now()

		fmt.Printf("  %s\n", item.Word.WordText)
		if item.Word.ExampleSentence != "" {
			fmt.Printf("  e.g. %s\n", item.Word.ExampleSentence)
		}
		fmt.Print("  [press enter to reveal] ")
		if !scanner.Scan() {
			break
		}
		fmt.Printf("  -> %s\n", item.Word.Translation)

		answer, stopped := promptAnswer(scanner)
		if stopped {
			break
		}

		elapsed := int(time.Since(started).Milliseconds())
		schedule, err := reviewService.SubmitAnswer(session, item.Word.ID, answer, elapsed)
		if err != nil {
			log.Fatalf("Failed to record answer: %v", err)
		}
		fmt.Printf("  next review in %d day(s)\n\n", schedule.Interval)
	}

	summary, err := reviewService.CompleteSession(session)
	if err != nil {
		log.Fatalf("Failed to complete session: %v", err)
	}
	fmt.Printf("Done: %d/%d correct (%.0f%%)\n",
		summary.Session.CorrectWords, summary.Session.TotalWords, summary.Accuracy*100)
}

// promptAnswer reads an answer bucket from the terminal, reprompting on
// unrecognized input. The second return is true when the user quits.
func promptAnswer(scanner *bufio.Scanner) (srs.Answer, bool) {
	for {
		fmt.Print("  (f/u/k, q to stop): ")
		if !scanner.Scan() {
			return 0, true
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" || input == "quit" {
			return 0, true
		}

		answer, err := srs.ParseAnswer(input)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		return answer, false
	}
}

func handleRemind(cfg *config.Config, userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, args []string) {
	reminderService, err := service.NewReminderService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize reminder service: %v", err)
	}

	users, err := userRepo.GetAllUsers()
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	now := time.Now()
	sent := 0
	for i := range users {
		user := &users[i]
		dueCount, err := progressRepo.CountDue(user.ID, now)
		if err != nil {
			log.Printf("Error counting due words for user %d: %v", user.ID, err)
			continue
		}
		if dueCount == 0 {
			continue
		}
		if err := reminderService.SendDueReminder(context.Background(), user, dueCount); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
			continue
		}
		sent++
	}

	fmt.Printf("Reminders sent: %d\n", sent)
}
