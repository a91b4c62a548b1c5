package frame

import "fmt"

// PictureType classifies an attached picture, per the APIC frame
// specification.
type PictureType byte

const (
	PictureOther             PictureType = 0x00
	PictureIcon              PictureType = 0x01
	PictureOtherIcon         PictureType = 0x02
	PictureFrontCover        PictureType = 0x03
	PictureBackCover         PictureType = 0x04
	PictureLeaflet           PictureType = 0x05
	PictureMedia             PictureType = 0x06
	PictureLeadArtist        PictureType = 0x07
	PictureArtist            PictureType = 0x08
	PictureConductor         PictureType = 0x09
	PictureBand              PictureType = 0x0A
	PictureComposer          PictureType = 0x0B
	PictureLyricist          PictureType = 0x0C
	PictureRecordingLocation PictureType = 0x0D
	PictureDuringRecording   PictureType = 0x0E
	PictureDuringPerformance PictureType = 0x0F
	PictureVideoCapture      PictureType = 0x10
	PictureBrightFish        PictureType = 0x11
	PictureIllustration      PictureType = 0x12
	PictureBandLogotype      PictureType = 0x13
	PicturePublisherLogotype PictureType = 0x14
)

var pictureTypeNames = map[PictureType]string{
	PictureOther:             "Other",
	PictureIcon:              "Icon",
	PictureOtherIcon:         "OtherIcon",
	PictureFrontCover:        "FrontCover",
	PictureBackCover:         "BackCover",
	PictureLeaflet:           "Leaflet",
	PictureMedia:             "Media",
	PictureLeadArtist:        "LeadArtist",
	PictureArtist:            "Artist",
	PictureConductor:         "Conductor",
	PictureBand:              "Band",
	PictureComposer:          "Composer",
	PictureLyricist:          "Lyricist",
	PictureRecordingLocation: "RecordingLocation",
	PictureDuringRecording:   "DuringRecording",
	PictureDuringPerformance: "DuringPerformance",
	PictureVideoCapture:      "VideoCapture",
	PictureBrightFish:        "BrightFish",
	PictureIllustration:      "Illustration",
	PictureBandLogotype:      "BandLogotype",
	PicturePublisherLogotype: "PublisherLogotype",
}

// String returns the picture type name, or a hex form for values outside
// the defined table.
func (p PictureType) String() string {
	if name, ok := pictureTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PictureType(0x%02X)", byte(p))
}
