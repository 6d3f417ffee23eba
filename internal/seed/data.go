// Package seed loads a fixture dataset (topics, users, articles, comments)
// into an empty schema. The same data backs the test suites and local
// development databases.
package seed

import (
	"time"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ArticleFixture is an article without an id. Articles are inserted in slice
// order, so the n-th fixture receives article_id n on a fresh schema.
type ArticleFixture struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
}

// CommentFixture references its article by 1-based position in Data.Articles.
type CommentFixture struct {
	Body      string
	Article   int
	Author    string
	Votes     int
	CreatedAt time.Time
}

// Data is a complete dataset.
type Data struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []ArticleFixture
	Comments []CommentFixture
}

const newspaperImg = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func at(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// TestData returns the fixture dataset: three topics (one without
// articles), four users, thirteen articles and eighteen comments.
func TestData() Data {
	return Data{
		Topics: []domain.Topic{
			{Slug: "mitch", Description: "The man, the Mitch, the legend"},
			{Slug: "cats", Description: "Not dogs"},
			{Slug: "paper", Description: "what books are made of"},
		},
		Users: []domain.User{
			{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
			{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
			{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
			{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
		},
		Articles: []ArticleFixture{
			{Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: at(1594329060000), Votes: 100, ArticleImgURL: newspaperImg},
			{Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: sonyVaioBody, CreatedAt: at(1602828180000), ArticleImgURL: newspaperImg},
			{Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: at(1604394720000), ArticleImgURL: newspaperImg},
			{Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are now suing for damages", CreatedAt: at(1588731240000), ArticleImgURL: newspaperImg},
			{Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: at(1596464040000), ArticleImgURL: newspaperImg},
			{Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: at(1602986400000), ArticleImgURL: newspaperImg},
			{Title: "Z", Topic: "mitch", Author: "icellusedkars", Body: "I was hungry.", CreatedAt: at(1578406080000), ArticleImgURL: newspaperImg},
			{Title: "Does Mitch predate civilisation?", Topic: "mitch", Author: "icellusedkars", Body: "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch. Surely I am not the only person who can see this?!", CreatedAt: at(1587089280000), ArticleImgURL: newspaperImg},
			{Title: "They're not exactly dogs, are they?", Topic: "mitch", Author: "butter_bridge", Body: "Well? Think about it.", CreatedAt: at(1591438200000), ArticleImgURL: newspaperImg},
			{Title: "Seven inspirational thought leaders from Manchester UK", Topic: "mitch", Author: "rogersop", Body: "Who are we kidding, there is only one, and it's Mitch!", CreatedAt: at(1589433300000), ArticleImgURL: newspaperImg},
			{Title: "Am I a cat?", Topic: "mitch", Author: "icellusedkars", Body: "Having run out of cat food, Mitch wonders whether he is, in fact, a cat.", CreatedAt: at(1579126860000), ArticleImgURL: newspaperImg},
			{Title: "Moustache", Topic: "mitch", Author: "butter_bridge", Body: "Have you seen the size of that thing?", CreatedAt: at(1602419040000), ArticleImgURL: newspaperImg},
			{Title: "Another article about Mitch", Topic: "mitch", Author: "butter_bridge", Body: "There will never be enough articles about Mitch!", CreatedAt: at(1602419040000), ArticleImgURL: newspaperImg},
		},
		Comments: []CommentFixture{
			{Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", Article: 9, Author: "butter_bridge", Votes: 16, CreatedAt: at(1586179020000)},
			{Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", Article: 1, Author: "butter_bridge", Votes: 14, CreatedAt: at(1604113380000)},
			{Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide, but, uh, call me crazy — onyou it works.", Article: 1, Author: "icellusedkars", Votes: 100, CreatedAt: at(1583025180000)},
			{Body: "I carry a log — yes. Is it funny to you? It is not to me.", Article: 1, Author: "icellusedkars", Votes: -100, CreatedAt: at(1582459260000)},
			{Body: "I hate streaming noses", Article: 1, Author: "icellusedkars", CreatedAt: at(1604437200000)},
			{Body: "I hate streaming eyes even more", Article: 1, Author: "icellusedkars", CreatedAt: at(1586642520000)},
			{Body: "Lobster pot", Article: 1, Author: "icellusedkars", CreatedAt: at(1589577540000)},
			{Body: "Delicious crackerbreads", Article: 1, Author: "icellusedkars", CreatedAt: at(1586899140000)},
			{Body: "Superficially charming", Article: 1, Author: "icellusedkars", CreatedAt: at(1577848080000)},
			{Body: "git push origin master", Article: 3, Author: "icellusedkars", CreatedAt: at(1592641440000)},
			{Body: "Ambidextrous marsupial", Article: 3, Author: "icellusedkars", CreatedAt: at(1600560600000)},
			{Body: "Massive intercranial brain haemorrhage", Article: 1, Author: "icellusedkars", CreatedAt: at(1583133600000)},
			{Body: "Fruit pastilles", Article: 1, Author: "icellusedkars", CreatedAt: at(1592220300000)},
			{Body: "What do you see? I have no idea where this will lead us. This place I speak of, is known as the Black Lodge.", Article: 5, Author: "icellusedkars", Votes: 16, CreatedAt: at(1591682400000)},
			{Body: "I am 100% sure that we're not completely sure.", Article: 5, Author: "butter_bridge", Votes: 1, CreatedAt: at(1606176480000)},
			{Body: "This is a bad article name", Article: 6, Author: "butter_bridge", Votes: 1, CreatedAt: at(1602433380000)},
			{Body: "The owls are not what they seem.", Article: 9, Author: "icellusedkars", Votes: 20, CreatedAt: at(1584205320000)},
			{Body: "This morning, I showered for nine minutes.", Article: 1, Author: "butter_bridge", Votes: 16, CreatedAt: at(1595294400000)},
		},
	}
}

const sonyVaioBody = "Call me Mitchell. Some years ago—never mind how long precisely—having little or no money in my purse, and nothing particular to interest me on shore, I thought I would buy a laptop about a little and see the codey part of the world. It is a way I have of driving off the spleen and regulating the circulation. Whenever I find myself growing grim about the mouth; whenever it is a damp, drizzly November in my soul; whenever I find myself involuntarily pausing before coffin warehouses, and bringing up the rear of every funeral I meet; and especially whenever my hypos get such an upper hand of me, that it requires a strong moral principle to prevent me from deliberately stepping into the street, and methodically knocking people’s hats off—then, I account it high time to get to coding as soon as I can. This is my substitute for pistol and ball. With a philosophical flourish Cato throws himself upon his sword; I quietly take to the laptop. There is nothing surprising in this. If they but knew it, almost all men in their degree, some time or other, cherish very nearly the same feelings towards the the Vaio with me."
