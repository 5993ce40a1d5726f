package entities

import "strconv"

// Platform names used across publish gateways and state reconciliation
const (
	PlatformWordPress = "wordpress"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
)

// SocialPost tracks one accepted create call on a social platform
type SocialPost struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ProcessedMeeting is the derived record owned by the publisher service.
// It lives only in memory for the current session: a restart loses the
// publish-state tracking but not the remote posts themselves.
//
// Invariant: a social_posts entry (or the wordpress_* pair) exists iff that
// platform accepted a create call since the entry was last cleared by a
// successful delete.
type ProcessedMeeting struct {
	MeetingTitle    string                `json:"meeting_title"`
	MeetingTime     string                `json:"meeting_time"`
	MeetingID       string                `json:"meeting_id"`
	Summary         Summary               `json:"summary"`
	BlogPost        string                `json:"blog_post,omitempty"`
	WordPressPostID *int                  `json:"wordpress_post_id,omitempty"`
	WordPressStatus string                `json:"wordpress_status,omitempty"`
	SocialPosts     map[string]SocialPost `json:"social_posts,omitempty"`
}

// SetWordPress records an accepted CMS create call
func (p *ProcessedMeeting) SetWordPress(postID int, status string) {
	p.WordPressPostID = &postID
	p.WordPressStatus = status
}

// ClearWordPress strips the CMS publish state after a successful delete
func (p *ProcessedMeeting) ClearWordPress() {
	p.WordPressPostID = nil
	p.WordPressStatus = ""
}

// SetSocialPost records an accepted create call for a social platform
func (p *ProcessedMeeting) SetSocialPost(platform string, post SocialPost) {
	if p.SocialPosts == nil {
		p.SocialPosts = make(map[string]SocialPost)
	}
	p.SocialPosts[platform] = post
}

// ClearSocialPost strips one platform's entry after a successful delete.
// When the last entry goes, the map itself is dropped rather than kept empty.
func (p *ProcessedMeeting) ClearSocialPost(platform string) {
	if p.SocialPosts == nil {
		return
	}
	delete(p.SocialPosts, platform)
	if len(p.SocialPosts) == 0 {
		p.SocialPosts = nil
	}
}

// PostID returns the remote post identifier tracked for the platform
func (p *ProcessedMeeting) PostID(platform string) (string, bool) {
	if platform == PlatformWordPress {
		if p.WordPressPostID == nil {
			return "", false
		}
		return strconv.Itoa(*p.WordPressPostID), true
	}
	post, ok := p.SocialPosts[platform]
	if !ok {
		return "", false
	}
	return post.ID, true
}
