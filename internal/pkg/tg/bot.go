package tg

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"vkazarin/zametki_bot/internal/pkg/auth"
	"vkazarin/zametki_bot/internal/repository"
	"vkazarin/zametki_bot/internal/service"
)

// NewAPI создаёт клиента Telegram Bot API.
func NewAPI(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

// Bot — адаптер Telegram: цикл обновлений, диалог авторизации по паролю
// и запуск конвейера сохранения на каждое принятое сообщение.
type Bot struct {
	api       *tgbotapi.BotAPI
	pipeline  service.Pipeline
	users     repository.AllowList
	passwords *auth.Checker
	log       *zap.Logger

	mu              sync.Mutex
	waitingPassword map[int64]bool // пользователи, от которых ждём пароль
}

func NewBot(api *tgbotapi.BotAPI, pipeline service.Pipeline, users repository.AllowList, passwords *auth.Checker, log *zap.Logger) *Bot {
	return &Bot{
		api:             api,
		pipeline:        pipeline,
		users:           users,
		passwords:       passwords,
		log:             log,
		waitingPassword: make(map[int64]bool),
	}
}

// Run запускает long polling и блокируется до отмены контекста.
// Каждое сообщение обрабатывается в своей горутине: сохранения
// независимы и могут идти параллельно.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)
	b.log.Info("бот запущен", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		b.reply(msg, "Не удалось определить пользователя.")
		return
	}
	uid := msg.From.ID

	if msg.Command() == "start" {
		b.handleStart(msg, uid)
		return
	}

	if b.isWaitingPassword(uid) {
		b.handlePassword(msg, uid)
		return
	}

	if !b.users.Contains(uid) {
		b.reply(msg, "Вы не авторизованы. Отправьте /start и введите пароль.")
		return
	}

	b.log.Info("получено сообщение",
		zap.String("username", msg.From.UserName),
		zap.Int64("user_id", uid))

	path, err := b.pipeline.Run(ctx, convertMessage(msg))
	if err != nil {
		// причина уже в логах конвейера, пользователю только общий ответ
		b.reply(msg, "Произошла ошибка при сохранении. Подробности в логах.")
		return
	}

	b.reply(msg, "Сохранено: "+path)
}

func (b *Bot) handleStart(msg *tgbotapi.Message, uid int64) {
	if b.users.Contains(uid) {
		b.reply(msg, "Вы уже авторизованы. Пришлите сообщение — я сохраню его в заметки.")
		return
	}
	b.setWaitingPassword(uid, true)
	b.reply(msg, "Здравствуйте! Введите пароль для доступа к сохранению заметок:")
}

func (b *Bot) handlePassword(msg *tgbotapi.Message, uid int64) {
	if b.passwords.Check(strings.TrimSpace(msg.Text)) {
		if err := b.users.Add(uid); err != nil {
			b.log.Error("не удалось сохранить список пользователей", zap.Error(err))
			b.reply(msg, "Произошла ошибка при сохранении. Подробности в логах.")
			return
		}
		b.setWaitingPassword(uid, false)
		b.log.Info("пользователь авторизован", zap.Int64("user_id", uid))
		b.reply(msg, "Пароль верный. Доступ предоставлен — можете отправлять сообщения.")
		return
	}
	// состояние остаётся — пользователь может попытаться ещё раз
	b.reply(msg, "Неверный пароль. Попробуйте ещё раз или отправьте /start для начала.")
}

func (b *Bot) isWaitingPassword(uid int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.waitingPassword[uid]
}

func (b *Bot) setWaitingPassword(uid int64, waiting bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if waiting {
		b.waitingPassword[uid] = true
	} else {
		delete(b.waitingPassword, uid)
	}
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID

	if _, err := b.api.Send(out); err != nil {
		b.log.Error("не удалось отправить ответ", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
	}
}
