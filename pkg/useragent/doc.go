// Package useragent condenses HTTP User-Agent headers into the few facts
// worth logging next to a lead: a bounded copy of the raw string, the
// device class, the operating system and, for crawlers, the bot name.
//
//	ua := useragent.Parse(r.UserAgent())
//	logger.Info("lead received",
//		slog.String("user_agent", ua.Short()),
//		slog.String("device", ua.DeviceType()),
//	)
//
// Classification is keyword based and never fails; anything it cannot place
// is reported as unknown.
package useragent
