// Package seed implements the `wordnest seed` command, which loads the
// lesson catalog from YAML fixtures.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"wordnest/internal/domain/lesson"
	"wordnest/internal/domain/quiz"
	"wordnest/internal/infrastructure/config"
	"wordnest/internal/infrastructure/database"
	"wordnest/internal/infrastructure/repository"
	"wordnest/internal/shared/logger"
)

var (
	env  string
	file string
)

type quizFixture struct {
	Title     string `yaml:"title"`
	Questions []struct {
		Prompt      string   `yaml:"prompt"`
		Choices     []string `yaml:"choices"`
		AnswerIndex int      `yaml:"answer_index"`
	} `yaml:"questions"`
}

type lessonFixture struct {
	Slug      string       `yaml:"slug"`
	Title     string       `yaml:"title"`
	Language  string       `yaml:"language"`
	Body      string       `yaml:"body"`
	Position  int          `yaml:"position"`
	Published bool         `yaml:"published"`
	Quiz      *quizFixture `yaml:"quiz"`
}

type seedFile struct {
	Lessons []lessonFixture `yaml:"lessons"`
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the lesson catalog from a YAML fixture",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seeds/lessons.yaml", "Path to seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	var fixtures seedFile
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	log := logger.NewLogger()
	lessonRepo := repository.NewLessonRepository(database.Get(), log)
	quizRepo := repository.NewQuizRepository(database.Get(), log)

	ctx := context.Background()
	seeded := 0
	for _, fixture := range fixtures.Lessons {
		created, err := seedLesson(ctx, lessonRepo, quizRepo, fixture)
		if err != nil {
			return fmt.Errorf("failed to seed lesson %q: %w", fixture.Slug, err)
		}
		if created {
			seeded++
		}
	}

	logger.Info("seeding completed", "lessons_in_file", len(fixtures.Lessons), "created", seeded)
	return nil
}

// seedLesson is idempotent: an existing slug is left untouched.
func seedLesson(ctx context.Context, lessonRepo lesson.Repository, quizRepo quiz.Repository, fixture lessonFixture) (bool, error) {
	existing, err := lessonRepo.GetBySlug(ctx, fixture.Slug)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	newLesson, err := lesson.NewLesson(fixture.Slug, fixture.Title, fixture.Language, fixture.Body, fixture.Position)
	if err != nil {
		return false, err
	}
	newLesson.Published = fixture.Published
	if err := lessonRepo.Create(ctx, newLesson); err != nil {
		return false, err
	}

	if fixture.Quiz == nil {
		return true, nil
	}

	q := &quiz.Quiz{
		LessonID: newLesson.ID,
		Title:    fixture.Quiz.Title,
	}
	for i, question := range fixture.Quiz.Questions {
		q.Questions = append(q.Questions, &quiz.Question{
			Prompt:      question.Prompt,
			Choices:     question.Choices,
			AnswerIndex: question.AnswerIndex,
			Position:    i,
		})
	}
	if err := q.Validate(); err != nil {
		return false, err
	}
	if err := quizRepo.CreateQuiz(ctx, q); err != nil {
		return false, err
	}
	return true, nil
}
