package discord

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/goroutine"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/auth"
	"github.com/x-xyz/rarity/domain/run"
)

const (
	DefaultPrefix           = "/"
	DefaultProgressInterval = 2 * time.Second
	DefaultRunTimeout       = 30 * time.Minute
)

// Session is the part of *discordgo.Session the handler talks to
type Session interface {
	ChannelMessageSend(channelID string, content string) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
}

type HandlerCfg struct {
	Auth     auth.Usecase
	Run      run.Usecase
	Artifact artifact.Usecase
	Prefix   string
	// ProgressInterval is the minimum delay between two progress edits
	ProgressInterval time.Duration
	RunTimeout       time.Duration
}

type Handler struct {
	auth             auth.Usecase
	run              run.Usecase
	artifact         artifact.Usecase
	prefix           string
	progressInterval time.Duration
	runTimeout       time.Duration

	root   ctx.Ctx
	cancel func()
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func New(cfg *HandlerCfg) *Handler {
	h := &Handler{
		auth:             cfg.Auth,
		run:              cfg.Run,
		artifact:         cfg.Artifact,
		prefix:           cfg.Prefix,
		progressInterval: cfg.ProgressInterval,
		runTimeout:       cfg.RunTimeout,
	}
	if h.prefix == "" {
		h.prefix = DefaultPrefix
	}
	if h.progressInterval <= 0 {
		h.progressInterval = DefaultProgressInterval
	}
	if h.runTimeout <= 0 {
		h.runTimeout = DefaultRunTimeout
	}
	h.root, h.cancel = ctx.WithCancel(ctx.WithValue(ctx.Background(), "surface", "discord"))
	return h
}

// Register subscribes the handler to new messages of s
func (h *Handler) Register(s *discordgo.Session) {
	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		h.Handle(s, m.Message)
	})
}

// Close cancels the analyses in flight and waits for their replies
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.cancel()
	h.wg.Wait()
}

// Handle dispatches one message. Messages of bots and anything not starting with the prefix are ignored.
func (h *Handler) Handle(s Session, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	fields := strings.Fields(m.Content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], h.prefix) {
		return
	}
	cmd := strings.ToLower(strings.TrimPrefix(fields[0], h.prefix))
	args := fields[1:]

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.wg.Add(1)
	h.mu.Unlock()
	defer h.wg.Done()

	c := ctx.WithValues(h.root, map[string]interface{}{
		"identity":  m.Author.ID,
		"channelID": m.ChannelID,
		"cmd":       cmd,
	})
	switch cmd {
	case "start":
		h.reply(c, s, m.ChannelID, msgWelcome)
	case "auth":
		h.authorize(c, s, m, args)
	case "analyze":
		h.analyze(c, s, m, args)
	}
}

func (h *Handler) reply(c ctx.Ctx, s Session, channelID, content string) *discordgo.Message {
	msg, err := s.ChannelMessageSend(channelID, content)
	if err != nil {
		c.WithField("err", err).Error("ChannelMessageSend failed")
		return nil
	}
	return msg
}

func (h *Handler) authorize(c ctx.Ctx, s Session, m *discordgo.Message, args []string) {
	key := ""
	if len(args) == 1 {
		key = args[0]
	}
	if err := h.auth.Authorize(c, m.Author.ID, key); err != nil {
		if !domain.IsUserError(err) {
			c.WithField("err", err).Error("auth.Authorize failed")
			h.reply(c, s, m.ChannelID, msgInternal)
			return
		}
		h.reply(c, s, m.ChannelID, errorReply(err))
		return
	}
	h.reply(c, s, m.ChannelID, msgGranted)
}

func (h *Handler) analyze(c ctx.Ctx, s Session, m *discordgo.Message, args []string) {
	if ok, err := h.auth.IsAuthorized(c, m.Author.ID); err != nil {
		c.WithField("err", err).Error("auth.IsAuthorized failed")
		h.reply(c, s, m.ChannelID, msgInternal)
		return
	} else if !ok {
		h.reply(c, s, m.ChannelID, errorReply(domain.ErrUnauthorized))
		return
	}

	req, err := run.ParseArgs(args)
	if err != nil {
		h.reply(c, s, m.ChannelID, errorReply(err))
		return
	}
	req.Requester = m.Author.ID

	c, cancel := ctx.WithTimeout(c, h.runTimeout)
	defer cancel()

	status := h.reply(c, s, m.ChannelID, msgFetching)
	res, err := h.run.Analyze(c, req, h.progress(c, s, status))
	if err != nil {
		c.WithField("err", err).Warn("run.Analyze failed")
		h.reply(c, s, m.ChannelID, errorReply(err))
		return
	}

	h.reply(c, s, m.ChannelID, msgComplete)
	h.send(c, s, m.ChannelID, res)
}

// progress edits the status message, at most once per interval, and always on the last id
func (h *Handler) progress(c ctx.Ctx, s Session, status *discordgo.Message) domain.ProgressObserver {
	if status == nil {
		return nil
	}
	last := time.Time{}
	return func(done, total int) {
		now := time.Now()
		if done < total && now.Sub(last) < h.progressInterval {
			return
		}
		last = now
		if _, err := s.ChannelMessageEdit(status.ChannelID, status.ID, progressReply(done, total)); err != nil {
			c.WithField("err", err).Warn("ChannelMessageEdit failed")
		}
	}
}

// send uploads the artifacts to the sink and posts their urls, or attaches the files
// without a sink. Local files are gone afterwards either way.
func (h *Handler) send(c ctx.Ctx, s Session, channelID string, res *run.Result) {
	if h.artifact.HasSink() {
		delivered, err := h.artifact.Deliver(c, res.RunId, res.Artifacts)
		if err != nil && len(delivered) == 0 {
			h.reply(c, s, channelID, msgUpload)
			return
		}
		h.reply(c, s, channelID, summaryReply(res, delivered))
		return
	}

	defer h.artifact.Release(c, res.Artifacts)
	files := make([]*discordgo.File, 0, len(res.Artifacts))
	for _, a := range res.Artifacts {
		f, err := os.Open(a.Path)
		if err != nil {
			c.WithFields(log.Fields{
				"path": a.Path,
				"err":  err,
			}).Error("os.Open failed")
			continue
		}
		defer f.Close()
		files = append(files, &discordgo.File{Name: a.Name, ContentType: a.ContentType, Reader: f})
	}
	if _, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: summaryReply(res, nil),
		Files:   files,
	}); err != nil {
		c.WithField("err", err).Error("ChannelMessageSendComplex failed")
		h.reply(c, s, channelID, msgUpload)
	}
}

// Serve opens the gateway connection and keeps it until c is done
func Serve(c ctx.Ctx, s *discordgo.Session, h *Handler) error {
	h.Register(s)
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages
	if err := s.Open(); err != nil {
		return err
	}
	goroutine.RecoverableGo(func() {
		<-c.Done()
		h.Close()
		if err := s.Close(); err != nil {
			c.WithField("err", err).Warn("discord session close failed")
		}
	})
	return nil
}
