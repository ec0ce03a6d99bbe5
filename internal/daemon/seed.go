package daemon

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/novera-digital/novera-site/internal/config"
	"github.com/novera-digital/novera-site/internal/db/models"
	"github.com/novera-digital/novera-site/internal/store"
)

// seed loads the initial content when the store is empty: the admin author and
// a handful of published blog posts. Runs are idempotent, an existing admin
// user skips the whole seed.
func seed(_ *config.Config, st store.Storage) {
	if _, err := st.GetUserByUsername("admin"); err == nil {
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Error().Err(err).Msg("seed: admin lookup failed")
		return
	}

	admin, err := st.CreateUser(&models.User{
		Username: "admin",
		Password: models.HashPassword("changeme"),
	})
	if err != nil {
		log.Error().Err(err).Msg("seed: failed to create admin user")
		return
	}

	for _, post := range samplePosts(admin.ID) {
		if _, err := st.CreateBlogPost(&post); err != nil {
			log.Error().Err(err).Str("slug", post.Slug).Msg("seed: failed to create blog post")
		}
	}

	log.Info().Msg("seeded initial content")
}

func samplePosts(authorID uint64) []models.BlogPost {
	return []models.BlogPost{
		{
			Title:   "Top Web Development Trends to Watch in 2023",
			Slug:    "web-development-trends-2023",
			Excerpt: "Discover the latest trends and technologies that are shaping the future of web development.",
			Content: `<p>The world of web development is constantly evolving, with new technologies and approaches emerging regularly. In 2023, several key trends are shaping how websites and web applications are built.</p>
<h2>1. Progressive Web Apps (PWAs)</h2>
<p>PWAs continue to gain traction as they offer the best of both worlds: the reach of websites and the functionality of native apps. They work offline, load quickly, and provide a seamless user experience.</p>
<h2>2. JAMstack Architecture</h2>
<p>JAMstack (JavaScript, APIs, and Markup) is becoming increasingly popular due to its focus on performance, security, and developer experience. By decoupling the frontend from the backend, JAMstack makes websites faster and more secure.</p>
<h2>3. WebAssembly</h2>
<p>WebAssembly enables high-performance applications in the browser by allowing code written in languages like C++ and Rust to run in the browser at near-native speed.</p>
<h2>4. Serverless Architecture</h2>
<p>Serverless computing allows developers to build and run applications without thinking about servers, making deployment easier and more cost-effective.</p>
<h2>5. AI and Machine Learning Integration</h2>
<p>AI and ML are being integrated into web applications for personalization, recommendation systems, and enhanced user experiences.</p>`,
			Image:     "https://images.unsplash.com/photo-1519389950473-47ba0277781c?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600&q=80",
			Category:  "Web Development",
			AuthorID:  authorID,
			CreatedAt: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:   "5 SEO Strategies That Actually Work in 2023",
			Slug:    "seo-strategies-2023",
			Excerpt: "Learn effective SEO techniques to improve your website's visibility and drive more organic traffic.",
			Content: `<p>Search Engine Optimization (SEO) remains a crucial aspect of digital marketing, but the tactics that work keep changing as search engines evolve. Here are five effective SEO strategies for 2023.</p>
<h2>1. Focus on User Experience</h2>
<p>Google's Core Web Vitals have made user experience a critical ranking factor. Optimizing page speed, mobile responsiveness, and overall usability is now essential for SEO success.</p>
<h2>2. Create High-Quality, Comprehensive Content</h2>
<p>Content that thoroughly addresses user queries and demonstrates expertise continues to perform well. Focus on creating in-depth content that provides real value to your audience.</p>
<h2>3. Optimize for Voice Search</h2>
<p>With the increasing use of voice assistants, optimizing for conversational queries is becoming more important. Focus on natural language and question-based keywords.</p>
<h2>4. Build Quality Backlinks</h2>
<p>Despite many algorithm changes, backlinks remain a top ranking factor. Focus on earning links from reputable, relevant sites through quality content and relationships.</p>
<h2>5. Leverage Structured Data</h2>
<p>Structured data helps search engines understand your content better and can lead to rich snippets in search results, increasing visibility and click-through rates.</p>`,
			Image:     "https://images.unsplash.com/photo-1579762593175-20226054cad0?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600&q=80",
			Category:  "Digital Marketing",
			AuthorID:  authorID,
			CreatedAt: time.Date(2023, 4, 28, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 4, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:   "The Psychology of Color in UI/UX Design",
			Slug:    "psychology-of-color-in-ui-ux-design",
			Excerpt: "Explore how color choices can impact user experience and influence user behavior on your website.",
			Content: `<p>Color is a powerful communication tool in design that can influence users' emotions, perceptions, and behaviors. Understanding color psychology can help create more effective user interfaces.</p>
<h2>The Emotional Impact of Colors</h2>
<p>Different colors evoke different emotional responses. For example:</p>
<ul>
<li><strong>Blue:</strong> Creates feelings of trust, security, and stability. Commonly used by banks and tech companies.</li>
<li><strong>Red:</strong> Evokes excitement, urgency, and passion. Effective for calls-to-action and clearance sales.</li>
<li><strong>Green:</strong> Associated with growth, health, and tranquility. Popular in environmental and financial applications.</li>
<li><strong>Yellow:</strong> Conveys optimism, clarity, and warmth. Good for highlighting important elements.</li>
<li><strong>Purple:</strong> Suggests luxury, creativity, and wisdom. Often used in beauty and premium products.</li>
</ul>
<h2>Cultural Considerations</h2>
<p>Color meanings can vary significantly across cultures. For example, while white represents purity in Western cultures, it's associated with mourning in some Eastern cultures. Consider your target audience's cultural background when selecting colors.</p>
<h2>Practical Applications in UI/UX Design</h2>
<p>Strategic use of color can improve user experience through:</p>
<ul>
<li>Creating visual hierarchy to guide users through interfaces</li>
<li>Improving readability and accessibility</li>
<li>Establishing brand identity and recognition</li>
<li>Encouraging specific user actions</li>
<li>Communicating feedback and system status</li>
</ul>`,
			Image:     "https://images.unsplash.com/photo-1556155092-490a1ba16284?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600&q=80",
			Category:  "UI/UX Design",
			AuthorID:  authorID,
			CreatedAt: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}
